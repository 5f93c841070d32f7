package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one connected browser. The id doubles as the player identity for
// the connection's lifetime. Writes are serialized per connection; gorilla
// forbids concurrent writers.
type Client struct {
	ID   string
	Conn *websocket.Conn

	mu sync.Mutex
}

func (c *Client) SafeWriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}
