package internal

type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

type ErrorData struct {
	Message string `json:"message"`
}

type RoomCreatedData struct {
	RoomID   string   `json:"roomId"`
	Player   *Player  `json:"player"`
	Settings Settings `json:"settings"`
}

type RoomJoinedData struct {
	RoomID   string   `json:"roomId"`
	Player   *Player  `json:"player"`
	Settings Settings `json:"settings"`
}

type PlayerGuessedData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type ChatMessageData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
}

type ReactionData struct {
	Emoji    string `json:"emoji"`
	PlayerID string `json:"playerId"`
}
