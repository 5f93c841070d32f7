package game

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/telesketch/telesketch-backend/internal"
)

// stateRecorder captures observer notifications from timer-driven
// transitions.
type stateRecorder struct {
	mu      sync.Mutex
	roomIDs []string
	ch      chan string
}

func newStateRecorder() *stateRecorder {
	return &stateRecorder{ch: make(chan string, 16)}
}

func (r *stateRecorder) OnStateChange(roomID string) {
	r.mu.Lock()
	r.roomIDs = append(r.roomIDs, roomID)
	r.mu.Unlock()
	r.ch <- roomID
}

func (r *stateRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.roomIDs)
}

func testSettings() internal.Settings {
	s := internal.DefaultSettings()
	s.PromptTimeSeconds = 45
	s.DrawingTimeSeconds = 90
	s.GuessingTimeSeconds = 45
	return s
}

// setupRoom creates a registry room with n players joined in order.
// Player ids are conn-0..conn-n-1; conn-0 is the host.
func setupRoom(t *testing.T, g *Registry, n int) (*internal.Room, []string) {
	t.Helper()

	ids := make([]string, n)
	ids[0] = "conn-0"
	room := g.CreateRoom(ids[0], "Player 0")

	for i := 1; i < n; i++ {
		ids[i] = fmt.Sprintf("conn-%d", i)
		_, err := g.JoinRoom(room.Id, ids[i], fmt.Sprintf("Player %d", i))
		require.NoError(t, err)
	}
	return room, ids
}

// runPromptPhase starts the game and submits one prompt per player,
// leaving the room in the drawing phase via early completion.
func runPromptPhase(t *testing.T, g *Registry, room *internal.Room, ids []string, prompts []string) {
	t.Helper()

	require.True(t, g.StartGame(room.Id))
	for i, id := range ids {
		require.True(t, g.SubmitPrompt(room.Id, id, prompts[i]))
	}

	room.Mu.RLock()
	defer room.Mu.RUnlock()
	require.Equal(t, internal.PhaseDrawing, room.GameState)
}

// runDrawingPhase submits one drawing per player, ending the phase early.
func runDrawingPhase(t *testing.T, g *Registry, room *internal.Room, ids []string) {
	t.Helper()

	for _, id := range ids {
		require.True(t, g.SubmitDrawing(room.Id, id, nil, ""))
	}

	room.Mu.RLock()
	defer room.Mu.RUnlock()
	require.Equal(t, internal.PhaseGuessing, room.GameState)
}

// runGuessingPhase submits one guess per player.
func runGuessingPhase(t *testing.T, g *Registry, room *internal.Room, ids []string, guesses []string) {
	t.Helper()

	for i, id := range ids {
		require.True(t, g.SubmitGuess(room.Id, id, guesses[i]))
	}
}
