package game

import (
	"log"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// DRAWING SUBMISSION
// =============================================================================

// SubmitDrawing records a player's strokes during the drawing phase. The
// drawing is credited to the chain that originated the drawn prompt, not to
// the submitter's own chain. A player without an assignment slot (joined
// mid-game) can still submit; the drawing is held but joins no chain.
func (g *Registry) SubmitDrawing(roomID, playerID string, drawing internal.Drawing, png string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState != internal.PhaseDrawing {
		return false
	}

	if drawing == nil {
		drawing = internal.Drawing{}
	}
	room.Drawings[playerID] = drawing

	if assignment, ok := room.PromptAssignments[playerID]; ok {
		room.AppendChainItem(assignment.PromptOwnerID, internal.ChainItem{
			Type:       internal.ChainDrawing,
			PlayerID:   playerID,
			PlayerName: room.PlayerName(playerID),
			Drawing:    drawing,
			PNG:        png,
		})
	}

	if len(room.Drawings) >= len(room.Players) {
		log.Printf("[Registry] All drawings in for room %s. Ending phase early.", roomID)
		g.endDrawingPhaseLocked(room)
	}

	return true
}
