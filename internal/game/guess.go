package game

import (
	"log"
	"strings"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// GUESS HANDLING
// =============================================================================

// SubmitGuess records a player's guess during the guessing phase. The guess
// joins the chain named by the assignment and becomes that chain's current
// text, so the next drawing round passes the evolving phrase forward.
func (g *Registry) SubmitGuess(roomID, playerID, guess string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState != internal.PhaseGuessing {
		return false
	}

	guess = strings.TrimSpace(guess)
	if guess == "" {
		return false
	}

	room.Guesses[playerID] = guess

	if assignment, ok := room.DrawingAssignments[playerID]; ok {
		room.AppendChainItem(assignment.ChainOwnerID, internal.ChainItem{
			Type:       internal.ChainGuess,
			PlayerID:   playerID,
			PlayerName: room.PlayerName(playerID),
			Text:       guess,
		})
		room.CurrentTexts[assignment.ChainOwnerID] = guess
	}

	if len(room.Guesses) >= len(room.Players) {
		log.Printf("[Registry] All players have guessed in room %s. Ending phase early.", roomID)
		g.endGuessingPhaseLocked(room)
	}

	return true
}
