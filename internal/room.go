package internal

import (
	"slices"
	"time"
)

// Methods (Room Struct) — pure data helpers, callers hold Mu.

// PreviousOwner returns the id one slot behind index i in the fixed turn
// order. This single rotation rule drives every hand-off: each player always
// receives content seeded by the player immediately behind them, so a chain
// returns to its owner after exactly len(TurnOrder) hand-offs.
func (r *Room) PreviousOwner(i int) string {
	n := len(r.TurnOrder)
	return r.TurnOrder[(i-1+n)%n]
}

func (r *Room) InTurnOrder(playerID string) bool {
	return slices.Contains(r.TurnOrder, playerID)
}

func (r *Room) PlayerName(playerID string) string {
	if p, ok := r.Players[playerID]; ok {
		return p.Name
	}
	return ""
}

// AppendChainItem credits an item to the given owner's chain.
func (r *Room) AppendChainItem(ownerID string, item ChainItem) {
	r.ChainItems[ownerID] = append(r.ChainItems[ownerID], item)
}

// BuildPromptAssignments rebuilds the draw assignments from CurrentTexts:
// the receiver at index i draws the text owned by the previous player in
// turn order. Used both at prompt-phase end and on the guessing→drawing
// back edge, where CurrentTexts already holds the newest guesses.
func (r *Room) BuildPromptAssignments() {
	r.PromptAssignments = make(map[string]PromptAssignment, len(r.TurnOrder))
	for i, playerID := range r.TurnOrder {
		ownerID := r.PreviousOwner(i)
		r.PromptAssignments[playerID] = PromptAssignment{
			PromptOwnerID: ownerID,
			PromptText:    r.CurrentTexts[ownerID],
		}
	}
}

// BuildDrawingAssignments rebuilds the guess assignments: the receiver at
// index i guesses the drawing owned by the previous player, and the guess is
// credited to that drawing's originating chain (two hops back).
func (r *Room) BuildDrawingAssignments() {
	r.DrawingAssignments = make(map[string]DrawingAssignment, len(r.TurnOrder))
	for i, playerID := range r.TurnOrder {
		ownerID := r.PreviousOwner(i)
		drawing := r.Drawings[ownerID]
		if drawing == nil {
			drawing = Drawing{}
		}
		chainOwnerID := ownerID
		if a, ok := r.PromptAssignments[ownerID]; ok {
			chainOwnerID = a.PromptOwnerID
		}
		r.DrawingAssignments[playerID] = DrawingAssignment{
			DrawingOwnerID: ownerID,
			Drawing:        drawing,
			ChainOwnerID:   chainOwnerID,
		}
	}
}

// BuildRoundChains assembles the reveal view, ordered by turn order.
func (r *Room) BuildRoundChains() {
	chains := make([]RoundChain, 0, len(r.TurnOrder))
	for _, ownerID := range r.TurnOrder {
		chains = append(chains, RoundChain{
			OwnerID:   ownerID,
			OwnerName: r.PlayerName(ownerID),
			Items:     r.ChainItems[ownerID],
		})
	}
	r.RoundChains = chains
}

// ResetGameData clears every phase-scoped map and game-lifetime accumulator.
// Run on startGame, returnToLobby and abortGame; players and settings stay.
func (r *Room) ResetGameData() {
	r.CurrentDrawer = ""
	r.Prompts = make(map[string]string)
	r.Drawings = make(map[string]Drawing)
	r.Guesses = make(map[string]string)
	r.PromptAssignments = make(map[string]PromptAssignment)
	r.DrawingAssignments = make(map[string]DrawingAssignment)
	r.ChainItems = make(map[string][]ChainItem)
	r.CurrentTexts = make(map[string]string)
	r.AllGameText = make([]string, 0)
	r.RoundChains = nil
	r.ResetResultsCursor()
}

func (r *Room) ResetResultsCursor() {
	r.ResultsTabIndex = 0
	r.ResultsItemIndex = 0
	r.ResultsComplete = false
}

// PhaseDuration returns the configured duration of a timed phase, zero for
// any phase without a deadline.
func (r *Room) PhaseDuration(phase GamePhase) time.Duration {
	switch phase {
	case PhasePrompt:
		return time.Duration(r.Settings.PromptTimeSeconds) * time.Second
	case PhaseDrawing:
		return time.Duration(r.Settings.DrawingTimeSeconds) * time.Second
	case PhaseGuessing:
		return time.Duration(r.Settings.GuessingTimeSeconds) * time.Second
	default:
		return 0
	}
}

// OrderedPlayers returns the players in join order, the fallback order used
// for host succession.
func (r *Room) OrderedPlayers() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for _, id := range r.JoinOrder {
		if p, ok := r.Players[id]; ok {
			players = append(players, p)
		}
	}
	return players
}
