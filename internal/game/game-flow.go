package game

import (
	"log"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// GAME FLOW - PHASE TRANSITIONS
// =============================================================================
//
// lobby → prompt → drawing → (guessing ⇄ drawing)* → results → lobby.
// Every end*Phase transition is guarded on the current phase, making it
// idempotent: whether the deadline and an early completion race, only the
// first caller transitions and any later caller is a no-op.

// StartGame begins a game from the lobby: round 1, prompt phase, and the
// turn order snapshotted from the players present right now. Later joiners
// never enter this rotation.
func (g *Registry) StartGame(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState != internal.PhaseLobby {
		return false
	}

	room.CurrentRound = 1
	room.GameState = internal.PhasePrompt
	room.TurnOrder = make([]string, len(room.JoinOrder))
	copy(room.TurnOrder, room.JoinOrder)
	room.ResetGameData()

	g.armPhaseTimerLocked(room, room.PhaseDuration(internal.PhasePrompt))

	log.Printf("[Registry] Game started in room %s. Prompt phase begins.", roomID)
	return true
}

// endPromptPhaseLocked moves prompt → drawing and deals out the draw
// assignments by the rotation rule. Caller holds room.Mu.
func (g *Registry) endPromptPhaseLocked(room *internal.Room) bool {
	if room.GameState != internal.PhasePrompt {
		return false
	}

	g.cancelPhaseTimerLocked(room)

	room.GameState = internal.PhaseDrawing
	room.BuildPromptAssignments()

	g.armPhaseTimerLocked(room, room.PhaseDuration(internal.PhaseDrawing))

	log.Printf("[Registry] Prompt phase ended in room %s", room.Id)
	return true
}

// endDrawingPhaseLocked moves drawing → guessing and deals out the guess
// assignments. Caller holds room.Mu.
func (g *Registry) endDrawingPhaseLocked(room *internal.Room) bool {
	if room.GameState != internal.PhaseDrawing {
		return false
	}

	g.cancelPhaseTimerLocked(room)

	room.GameState = internal.PhaseGuessing
	room.Guesses = make(map[string]string)
	room.BuildDrawingAssignments()

	g.armPhaseTimerLocked(room, room.PhaseDuration(internal.PhaseGuessing))

	log.Printf("[Registry] Drawing phase ended in room %s", room.Id)
	return true
}

// endGuessingPhaseLocked either loops back into another drawing round,
// re-seeded from the freshly guessed texts, or finalizes the chains and
// enters results. Caller holds room.Mu.
func (g *Registry) endGuessingPhaseLocked(room *internal.Room) bool {
	if room.GameState != internal.PhaseGuessing {
		return false
	}

	g.cancelPhaseTimerLocked(room)

	g.appendGuessLogLocked(room)

	if room.CurrentRound < room.Settings.MaxRounds {
		room.CurrentRound++
		room.GameState = internal.PhaseDrawing
		room.Drawings = make(map[string]internal.Drawing)
		room.Guesses = make(map[string]string)
		room.DrawingAssignments = make(map[string]internal.DrawingAssignment)
		room.BuildPromptAssignments()

		g.armPhaseTimerLocked(room, room.PhaseDuration(internal.PhaseDrawing))

		log.Printf("[Registry] Guessing phase ended in room %s. Moving to next drawing round.", room.Id)
		return true
	}

	room.GameState = internal.PhaseResults
	room.BuildRoundChains()
	room.ResetResultsCursor()

	log.Printf("[Registry] Guessing phase ended in room %s", room.Id)
	return true
}

// appendGuessLogLocked records this phase's guesses into the flat reveal
// log, rotation members first and late joiners after.
func (g *Registry) appendGuessLogLocked(room *internal.Room) {
	for _, playerID := range room.TurnOrder {
		if text, ok := room.Guesses[playerID]; ok {
			room.AllGameText = append(room.AllGameText, "Answer: "+text)
		}
	}
	for _, playerID := range room.JoinOrder {
		if room.InTurnOrder(playerID) {
			continue
		}
		if text, ok := room.Guesses[playerID]; ok {
			room.AllGameText = append(room.AllGameText, "Answer: "+text)
		}
	}
}

// ReturnToLobby resets game state from any phase, keeping players and
// settings so the same group can start over.
func (g *Registry) ReturnToLobby(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	g.resetToLobbyLocked(room)
	log.Printf("[Registry] Room %s returned to lobby", roomID)
	return true
}

// AbortGame cancels whatever is running and forces the room back to the
// lobby, clearing the pause bank as well.
func (g *Registry) AbortGame(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	g.resetToLobbyLocked(room)
	log.Printf("[Registry] Game aborted in room %s", roomID)
	return true
}

func (g *Registry) resetToLobbyLocked(room *internal.Room) {
	g.cancelPhaseTimerLocked(room)
	room.GameState = internal.PhaseLobby
	room.CurrentRound = 0
	room.TurnOrder = nil
	room.ResetGameData()
	room.IsPaused = false
	room.RemainingTime = 0
}
