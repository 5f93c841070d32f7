package game

import (
	"log"
	"slices"
	"sync"

	"github.com/telesketch/telesketch-backend/internal"
	"github.com/telesketch/telesketch-backend/internal/utils"
)

// =============================================================================
// ROOM REGISTRY
// =============================================================================

// StateObserver is notified after a timer-driven transition completes, so the
// transport layer can push a fresh room view. Caller-triggered transitions
// report through the action's return value instead.
type StateObserver interface {
	OnStateChange(roomID string)
}

type noopObserver struct{}

func (noopObserver) OnStateChange(string) {}

// Registry owns the mapping from room id to Room and every room-scoped
// operation. Rooms are fully independent; the registry lock only guards the
// map, each Room serializes its own mutations under Room.Mu.
type Registry struct {
	rooms    map[string]*internal.Room
	mu       sync.RWMutex
	observer StateObserver
	defaults internal.Settings
}

// NewRegistry creates a registry using the given default room settings. The
// observer is fixed at construction; pass nil for none.
func NewRegistry(defaults internal.Settings, observer StateObserver) *Registry {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Registry{
		rooms:    make(map[string]*internal.Room),
		observer: observer,
		defaults: defaults,
	}
}

// CreateRoom allocates a fresh room with the caller as sole player and host.
func (g *Registry) CreateRoom(hostID, hostName string) *internal.Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	roomID := utils.GenerateRoomCode()
	for {
		if _, exists := g.rooms[roomID]; !exists {
			break
		}
		roomID = utils.GenerateRoomCode()
	}

	host := internal.NewPlayer(hostID, hostName, true)
	room := &internal.Room{
		Id:        roomID,
		Host:      hostID,
		Players:   map[string]*internal.Player{hostID: host},
		JoinOrder: []string{hostID},
		Settings:  g.defaults,
		GameState: internal.PhaseLobby,
	}
	room.ResetGameData()

	g.rooms[roomID] = room
	log.Printf("[Registry] Room %s created by %s", roomID, hostName)
	return room
}

// JoinRoom adds a player to an existing room. Mid-game joins are allowed:
// the player is added to Players but not to the frozen TurnOrder.
func (g *Registry) JoinRoom(roomID, playerID, name string) (*internal.Room, error) {
	room := g.GetRoom(roomID)
	if room == nil {
		return nil, internal.ErrRoomNotFound
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if len(room.Players) >= room.Settings.MaxPlayers {
		return nil, internal.ErrRoomFull
	}

	room.Players[playerID] = internal.NewPlayer(playerID, name, false)
	room.JoinOrder = append(room.JoinOrder, playerID)

	log.Printf("[Registry] %s joined room %s", name, roomID)
	return room, nil
}

// LeaveRoom removes a player. The last player out deletes the room; a
// departing host hands off to the earliest remaining joiner; a departing
// rotation-slot holder force-ends a waiting prompt/drawing phase so the
// room cannot stall on a submission that will never arrive.
func (g *Registry) LeaveRoom(roomID, playerID string) {
	room := g.GetRoom(roomID)
	if room == nil {
		return
	}

	room.Mu.Lock()

	if _, ok := room.Players[playerID]; !ok {
		room.Mu.Unlock()
		return
	}
	delete(room.Players, playerID)
	room.JoinOrder = slices.DeleteFunc(room.JoinOrder, func(id string) bool {
		return id == playerID
	})

	if len(room.Players) == 0 {
		g.cancelPhaseTimerLocked(room)
		room.Mu.Unlock()

		g.mu.Lock()
		delete(g.rooms, roomID)
		g.mu.Unlock()
		log.Printf("[Registry] Room %s deleted (empty)", roomID)
		return
	}

	if room.Host == playerID {
		newHost := room.JoinOrder[0]
		room.Host = newHost
		room.Players[newHost].IsHost = true
		log.Printf("[Registry] New host %s assigned in room %s", newHost, roomID)
	}

	if room.InTurnOrder(playerID) {
		switch room.GameState {
		case internal.PhasePrompt:
			log.Printf("[Registry] Prompter left room %s. Ending phase early.", roomID)
			g.endPromptPhaseLocked(room)
		case internal.PhaseDrawing:
			log.Printf("[Registry] Drawer left room %s. Ending phase early.", roomID)
			g.endDrawingPhaseLocked(room)
		}
	}

	room.Mu.Unlock()
}

// UpdateSettings shallow-merges the patch; ranges are caller-constrained.
func (g *Registry) UpdateSettings(roomID string, patch internal.SettingsPatch) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	room.Settings.Apply(patch)
	return true
}

func (g *Registry) GetRoom(roomID string) *internal.Room {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rooms[roomID]
}

// GetRoomByMember finds the room a player currently belongs to, if any.
func (g *Registry) GetRoomByMember(playerID string) *internal.Room {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, room := range g.rooms {
		room.Mu.RLock()
		_, ok := room.Players[playerID]
		room.Mu.RUnlock()
		if ok {
			return room
		}
	}
	return nil
}

// IsHost reports whether the player is the room's current host. Privileged
// actions are gated here by the transport layer, not inside the state
// machine.
func (g *Registry) IsHost(roomID, playerID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.RLock()
	defer room.Mu.RUnlock()
	return room.Host == playerID
}

// MemberIDs returns the ids of all players in the room, in join order.
func (g *Registry) MemberIDs(roomID string) []string {
	room := g.GetRoom(roomID)
	if room == nil {
		return nil
	}

	room.Mu.RLock()
	defer room.Mu.RUnlock()
	return slices.Clone(room.JoinOrder)
}
