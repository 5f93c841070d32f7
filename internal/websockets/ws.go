package websockets

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/telesketch/telesketch-backend/internal"
	"github.com/telesketch/telesketch-backend/internal/game"
	"github.com/telesketch/telesketch-backend/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub owns the live connections and routes client actions into the game
// registry. It is also the registry's StateObserver: when a phase deadline
// fires, the hub pushes the updated room view to every member.
type Hub struct {
	registry *game.Registry

	clients map[string]*Client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// SetRegistry wires the game registry. Called once during startup, before
// any connection is accepted.
func (h *Hub) SetRegistry(registry *game.Registry) {
	h.registry = registry
}

// OnStateChange implements game.StateObserver for timer-driven transitions.
func (h *Hub) OnStateChange(roomID string) {
	h.EmitRoomState(roomID)
}

// EmitRoomState pushes the serialized room view to every member.
func (h *Hub) EmitRoomState(roomID string) {
	state := h.registry.SnapshotState(roomID)
	if state == nil {
		return
	}

	msg := internal.Message[*game.RoomState]{Type: "game_state", Data: state}
	for _, p := range state.Players {
		h.sendTo(p.Id, msg)
	}
}

// BroadcastToRoom sends one message to every member of a room.
func (h *Hub) BroadcastToRoom(roomID string, msg any) {
	for _, playerID := range h.registry.MemberIDs(roomID) {
		h.sendTo(playerID, msg)
	}
}

func (h *Hub) sendTo(playerID string, msg any) {
	h.mu.RLock()
	client := h.clients[playerID]
	h.mu.RUnlock()
	if client == nil {
		return
	}
	if err := client.SafeWriteJSON(msg); err != nil {
		log.Printf("[Hub] Failed to send to client %s: %v", playerID, err)
	}
}

// HandleWebSocket upgrades the connection and starts the read loop. The
// connection id minted here is the player's identity until disconnect.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[Hub] Upgrade failed:", err)
		return
	}

	client := &Client{
		ID:   utils.GenerateConnectionID(),
		Conn: conn,
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	log.Printf("[Hub] Client connected: %s", client.ID)
	go h.readLoop(client)
}

func (h *Hub) readLoop(client *Client) {
	defer func() {
		client.Conn.Close()
		h.disconnect(client)
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			log.Printf("[Hub] Read error for client %s: %v", client.ID, err)
			break
		}

		var msg internal.Message[json.RawMessage]
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("[Hub] Failed to parse message from %s: %v", client.ID, err)
			continue
		}

		h.route(client, msg)
	}
}

func (h *Hub) route(client *Client, msg internal.Message[json.RawMessage]) {
	switch msg.Type {
	case "create_room":
		var p createRoomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		h.handleCreateRoom(client, p)

	case "join_room":
		var p joinRoomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		h.handleJoinRoom(client, p)

	case "update_settings":
		var p updateSettingsPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		h.handleUpdateSettings(client, p)

	case "start_game":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to start the game") {
			return
		}
		if h.registry.StartGame(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "submit_prompt":
		var p submitPromptPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if h.registry.SubmitPrompt(p.RoomID, client.ID, p.Prompt) {
			client.SafeWriteJSON(internal.Message[any]{Type: "prompt_submitted"})
			h.EmitRoomState(p.RoomID)
		}

	case "submit_drawing":
		var p submitDrawingPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if h.registry.SubmitDrawing(p.RoomID, client.ID, p.Drawing, p.PNG) {
			h.EmitRoomState(p.RoomID)
		}

	case "submit_guess":
		var p submitGuessPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		h.handleSubmitGuess(client, p)

	case "next_result":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to advance the results") {
			return
		}
		if h.registry.NextResult(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "return_to_lobby":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to return to the lobby") {
			return
		}
		if h.registry.ReturnToLobby(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "pause_game":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to pause the game") {
			return
		}
		if h.registry.PauseGame(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "resume_game":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to resume the game") {
			return
		}
		if h.registry.ResumeGame(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "abort_game":
		var p roomPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if !h.requireHost(client, p.RoomID, "You do not have permission to abort the game") {
			return
		}
		if h.registry.AbortGame(p.RoomID) {
			h.EmitRoomState(p.RoomID)
		}

	case "chat_message":
		var p chatMessagePayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		h.handleChatMessage(client, p)

	case "reaction":
		var p reactionPayload
		if !h.decode(client, msg.Data, &p) {
			return
		}
		if h.registry.GetRoom(p.RoomID) == nil {
			return
		}
		h.BroadcastToRoom(p.RoomID, internal.Message[internal.ReactionData]{
			Type: "reaction",
			Data: internal.ReactionData{Emoji: p.Emoji, PlayerID: client.ID},
		})

	default:
		log.Printf("[Hub] Unknown message type %q from %s", msg.Type, client.ID)
	}
}

func (h *Hub) handleCreateRoom(client *Client, p createRoomPayload) {
	room := h.registry.CreateRoom(client.ID, p.Name)

	room.Mu.RLock()
	data := internal.RoomCreatedData{
		RoomID:   room.Id,
		Player:   room.Players[client.ID],
		Settings: room.Settings,
	}
	room.Mu.RUnlock()

	client.SafeWriteJSON(internal.Message[internal.RoomCreatedData]{Type: "room_created", Data: data})
	h.EmitRoomState(room.Id)
}

func (h *Hub) handleJoinRoom(client *Client, p joinRoomPayload) {
	room, err := h.registry.JoinRoom(p.RoomID, client.ID, p.Name)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	room.Mu.RLock()
	data := internal.RoomJoinedData{
		RoomID:   room.Id,
		Player:   room.Players[client.ID],
		Settings: room.Settings,
	}
	room.Mu.RUnlock()

	client.SafeWriteJSON(internal.Message[internal.RoomJoinedData]{Type: "room_joined", Data: data})
	h.EmitRoomState(p.RoomID)
}

func (h *Hub) handleUpdateSettings(client *Client, p updateSettingsPayload) {
	if !h.requireHost(client, p.RoomID, "You do not have permission to change settings") {
		return
	}
	if !h.registry.UpdateSettings(p.RoomID, p.Settings) {
		return
	}

	room := h.registry.GetRoom(p.RoomID)
	room.Mu.RLock()
	settings := room.Settings
	room.Mu.RUnlock()

	h.BroadcastToRoom(p.RoomID, internal.Message[internal.Settings]{
		Type: "settings_updated",
		Data: settings,
	})
}

func (h *Hub) handleSubmitGuess(client *Client, p submitGuessPayload) {
	if !h.registry.SubmitGuess(p.RoomID, client.ID, p.Guess) {
		return
	}
	client.SafeWriteJSON(internal.Message[any]{Type: "guess_submitted"})

	room := h.registry.GetRoom(p.RoomID)
	if room != nil {
		room.Mu.RLock()
		name := room.PlayerName(client.ID)
		room.Mu.RUnlock()

		h.BroadcastToRoom(p.RoomID, internal.Message[internal.PlayerGuessedData]{
			Type: "player_guessed",
			Data: internal.PlayerGuessedData{PlayerID: client.ID, PlayerName: name},
		})
	}

	h.EmitRoomState(p.RoomID)
}

func (h *Hub) handleChatMessage(client *Client, p chatMessagePayload) {
	room := h.registry.GetRoomByMember(client.ID)
	if room == nil {
		return
	}

	room.Mu.RLock()
	roomID := room.Id
	name := room.PlayerName(client.ID)
	room.Mu.RUnlock()

	// Pure relay; chat never touches game state.
	h.BroadcastToRoom(roomID, internal.Message[internal.ChatMessageData]{
		Type: "chat_message",
		Data: internal.ChatMessageData{PlayerID: client.ID, PlayerName: name, Message: p.Message},
	})
}

func (h *Hub) requireHost(client *Client, roomID, denied string) bool {
	if h.registry.GetRoom(roomID) == nil {
		h.sendError(client, internal.ErrRoomNotFound.Error())
		return false
	}
	if !h.registry.IsHost(roomID, client.ID) {
		h.sendError(client, denied)
		return false
	}
	return true
}

func (h *Hub) decode(client *Client, raw json.RawMessage, v any) bool {
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("[Hub] Bad payload from %s: %v", client.ID, err)
		return false
	}
	return true
}

func (h *Hub) sendError(client *Client, message string) {
	client.SafeWriteJSON(internal.Message[internal.ErrorData]{
		Type: "error",
		Data: internal.ErrorData{Message: message},
	})
}

func (h *Hub) disconnect(client *Client) {
	log.Printf("[Hub] Client disconnected: %s", client.ID)

	if room := h.registry.GetRoomByMember(client.ID); room != nil {
		roomID := room.Id
		h.registry.LeaveRoom(roomID, client.ID)
		h.EmitRoomState(roomID)
	}

	h.mu.Lock()
	delete(h.clients, client.ID)
	h.mu.Unlock()
}
