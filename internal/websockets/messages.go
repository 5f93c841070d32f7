package websockets

import "github.com/telesketch/telesketch-backend/internal"

// Inbound message payloads, one struct per client action.

type createRoomPayload struct {
	Name string `json:"name"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type updateSettingsPayload struct {
	RoomID   string                 `json:"roomId"`
	Settings internal.SettingsPatch `json:"settings"`
}

type roomPayload struct {
	RoomID string `json:"roomId"`
}

type submitPromptPayload struct {
	RoomID string `json:"roomId"`
	Prompt string `json:"prompt"`
}

type submitDrawingPayload struct {
	RoomID  string           `json:"roomId"`
	Drawing internal.Drawing `json:"drawing"`
	PNG     string           `json:"png"`
}

type submitGuessPayload struct {
	RoomID string `json:"roomId"`
	Guess  string `json:"guess"`
}

type chatMessagePayload struct {
	Message string `json:"message"`
}

type reactionPayload struct {
	RoomID string `json:"roomId"`
	Emoji  string `json:"emoji"`
}
