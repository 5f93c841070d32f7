package internal

import "time"

// Player identity is the transport connection id: opaque, stable for the
// connection's lifetime, unique within a room.
type Player struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	IsHost bool   `json:"isHost"`

	JoinedAt time.Time `json:"-"`
}

func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		Id:       id,
		Name:     name,
		IsHost:   isHost,
		JoinedAt: time.Now(),
	}
}
