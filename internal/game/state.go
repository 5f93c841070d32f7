package game

import (
	"time"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// SERIALIZED ROOM VIEW
// =============================================================================

// PromptAssignmentView is one prompt hand-off as broadcast to clients.
type PromptAssignmentView struct {
	PlayerID      string `json:"playerId"`
	PromptOwnerID string `json:"promptOwnerId"`
	PromptText    string `json:"promptText"`
}

// DrawingAssignmentView is one drawing hand-off as broadcast to clients.
// The chain owner stays server-side so guessers cannot trace a drawing back
// to its origin.
type DrawingAssignmentView struct {
	PlayerID       string           `json:"playerId"`
	DrawingOwnerID string           `json:"drawingOwnerId"`
	Drawing        internal.Drawing `json:"drawing"`
}

// RoundResults wraps the finalized chains for the results screen.
type RoundResults struct {
	Chains []internal.RoundChain `json:"chains"`
}

// RoomState is the derived view pushed to every client after a state change.
type RoomState struct {
	GameState       internal.GamePhase    `json:"gameState"`
	RoomID          string                `json:"roomId"`
	CurrentRound    int                   `json:"currentRound"`
	MaxRounds       int                   `json:"maxRounds"`
	Players         []*internal.Player    `json:"players"`
	RoundChains     []internal.RoundChain `json:"roundChains"`
	ResultsTabIndex int                   `json:"resultsTabIndex"`
	AllGameText     []string              `json:"allGameText"`
	CurrentDrawer   string                `json:"currentDrawer,omitempty"`
	Settings        internal.Settings     `json:"settings"`
	IsPaused        bool                  `json:"isPaused"`

	// Phase-specific fields.
	PromptAssignments  []PromptAssignmentView  `json:"promptAssignments,omitempty"`
	DrawingAssignments []DrawingAssignmentView `json:"drawingAssignments,omitempty"`
	TimeRemaining      *int                    `json:"timeRemaining,omitempty"`
	GuessedPlayers     []string                `json:"guessedPlayers,omitempty"`
	Results            *RoundResults           `json:"results,omitempty"`
	ResultsItemIndex   *int                    `json:"resultsItemIndex,omitempty"`
	ResultsComplete    *bool                   `json:"resultsComplete,omitempty"`
}

// SnapshotState builds the broadcast view of a room, nil if the room is gone.
func (g *Registry) SnapshotState(roomID string) *RoomState {
	room := g.GetRoom(roomID)
	if room == nil {
		return nil
	}

	room.Mu.RLock()
	defer room.Mu.RUnlock()

	state := &RoomState{
		GameState:       room.GameState,
		RoomID:          room.Id,
		CurrentRound:    room.CurrentRound,
		MaxRounds:       room.Settings.MaxRounds,
		Players:         room.OrderedPlayers(),
		RoundChains:     room.RoundChains,
		ResultsTabIndex: room.ResultsTabIndex,
		AllGameText:     room.AllGameText,
		CurrentDrawer:   room.CurrentDrawer,
		Settings:        room.Settings,
		IsPaused:        room.IsPaused,
	}

	switch room.GameState {
	case internal.PhasePrompt, internal.PhaseDrawing:
		state.PromptAssignments = promptAssignmentViews(room)
		state.TimeRemaining = timeRemaining(room)
	case internal.PhaseGuessing:
		state.DrawingAssignments = drawingAssignmentViews(room)
		state.TimeRemaining = timeRemaining(room)
		state.GuessedPlayers = guessedPlayers(room)
	case internal.PhaseResults:
		state.Results = &RoundResults{Chains: room.RoundChains}
		itemIndex := room.ResultsItemIndex
		complete := room.ResultsComplete
		state.ResultsItemIndex = &itemIndex
		state.ResultsComplete = &complete
	}

	return state
}

// timeRemaining reports whole seconds left in the current phase, floored at
// zero. While paused it reflects the banked remainder, since RoundStartTime
// is rewound on resume.
func timeRemaining(room *internal.Room) *int {
	duration := room.PhaseDuration(room.GameState)
	var remaining int
	if room.IsPaused {
		remaining = int(room.RemainingTime.Seconds())
	} else {
		elapsed := int(time.Since(room.RoundStartTime).Seconds())
		remaining = int(duration.Seconds()) - elapsed
	}
	remaining = max(0, remaining)
	return &remaining
}

func promptAssignmentViews(room *internal.Room) []PromptAssignmentView {
	views := make([]PromptAssignmentView, 0, len(room.PromptAssignments))
	for _, playerID := range room.TurnOrder {
		if a, ok := room.PromptAssignments[playerID]; ok {
			views = append(views, PromptAssignmentView{
				PlayerID:      playerID,
				PromptOwnerID: a.PromptOwnerID,
				PromptText:    a.PromptText,
			})
		}
	}
	return views
}

func drawingAssignmentViews(room *internal.Room) []DrawingAssignmentView {
	views := make([]DrawingAssignmentView, 0, len(room.DrawingAssignments))
	for _, playerID := range room.TurnOrder {
		if a, ok := room.DrawingAssignments[playerID]; ok {
			views = append(views, DrawingAssignmentView{
				PlayerID:       playerID,
				DrawingOwnerID: a.DrawingOwnerID,
				Drawing:        a.Drawing,
			})
		}
	}
	return views
}

func guessedPlayers(room *internal.Room) []string {
	guessed := make([]string, 0, len(room.Guesses))
	for _, playerID := range room.JoinOrder {
		if _, ok := room.Guesses[playerID]; ok {
			guessed = append(guessed, playerID)
		}
	}
	return guessed
}
