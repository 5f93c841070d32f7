package game

import (
	"log"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// RESULTS PAGINATION
// =============================================================================

// NextResult advances the reveal cursor one step: through the active chain's
// items first, then onto the next chain. Stepping past the last chain clamps
// the tab, marks the reveal complete and still counts as an effective step;
// every call after that is a no-op. Once complete, clients navigate tabs
// freely on their side.
func (g *Registry) NextResult(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState != internal.PhaseResults || room.ResultsComplete {
		return false
	}

	maxItems := 0
	if room.ResultsTabIndex < len(room.RoundChains) {
		maxItems = len(room.RoundChains[room.ResultsTabIndex].Items)
	}
	if room.ResultsItemIndex < max(0, maxItems-1) {
		room.ResultsItemIndex++
		return true
	}

	room.ResultsItemIndex = 0
	room.ResultsTabIndex++

	if room.ResultsTabIndex >= len(room.RoundChains) {
		room.ResultsTabIndex = max(0, len(room.RoundChains)-1)
		room.ResultsComplete = true
		log.Printf("[Registry] Results complete in room %s", roomID)
	}

	return true
}
