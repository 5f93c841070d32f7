package game

import (
	"log"
	"strings"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// PROMPT HANDLING
// =============================================================================

// SubmitPrompt records a player's seed text during the prompt phase. The
// prompt opens that player's chain. Once every present player has submitted,
// the phase ends ahead of its deadline.
func (g *Registry) SubmitPrompt(roomID, playerID, prompt string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState != internal.PhasePrompt {
		return false
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return false
	}

	room.Prompts[playerID] = prompt
	room.CurrentTexts[playerID] = prompt
	room.AllGameText = append(room.AllGameText, "Prompt: "+prompt)
	room.AppendChainItem(playerID, internal.ChainItem{
		Type:       internal.ChainPrompt,
		PlayerID:   playerID,
		PlayerName: room.PlayerName(playerID),
		Text:       prompt,
	})

	if len(room.Prompts) >= len(room.Players) {
		log.Printf("[Registry] All prompts in for room %s. Ending phase early.", roomID)
		g.endPromptPhaseLocked(room)
	}

	return true
}
