package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telesketch/telesketch-backend/internal"
)

// playToResults drives an n player game through one full round so the room
// lands in the results phase with n chains of 3 items each.
func playToResults(t *testing.T, g *Registry, n int) (*internal.Room, []string) {
	t.Helper()

	room, ids := setupRoom(t, g, n)
	prompts := make([]string, n)
	guesses := make([]string, n)
	for i := range ids {
		prompts[i] = fmt.Sprintf("prompt-%d", i)
		guesses[i] = fmt.Sprintf("guess-%d", i)
	}

	runPromptPhase(t, g, room, ids, prompts)
	runDrawingPhase(t, g, room, ids)
	runGuessingPhase(t, g, room, ids, guesses)

	room.Mu.RLock()
	defer room.Mu.RUnlock()
	require.Equal(t, internal.PhaseResults, room.GameState)
	return room, ids
}

func TestNextResultWalksEveryItemOnce(t *testing.T) {
	for _, n := range []int{1, 3} {
		t.Run(fmt.Sprintf("%d_players", n), func(t *testing.T) {
			g := NewRegistry(testSettings(), nil)
			room, _ := playToResults(t, g, n)

			room.Mu.RLock()
			totalItems := 0
			for _, chain := range room.RoundChains {
				totalItems += len(chain.Items)
			}
			room.Mu.RUnlock()

			// One effective step per item: the last item of each chain is
			// consumed by the step that moves onto the next tab.
			steps := 0
			for g.NextResult(room.Id) {
				steps++
				require.LessOrEqual(t, steps, totalItems, "cursor never terminated")
			}
			assert.Equal(t, totalItems, steps)

			room.Mu.RLock()
			assert.True(t, room.ResultsComplete)
			assert.Equal(t, len(room.RoundChains)-1, room.ResultsTabIndex)
			assert.Zero(t, room.ResultsItemIndex)
			room.Mu.RUnlock()

			// Terminal: every further call is a no-op.
			assert.False(t, g.NextResult(room.Id))
			assert.False(t, g.NextResult(room.Id))
		})
	}
}

func TestNextResultCursorSequence(t *testing.T) {
	g := NewRegistry(testSettings(), nil)
	room, _ := playToResults(t, g, 2)

	type cursor struct{ tab, item int }
	var seen []cursor

	for g.NextResult(room.Id) {
		room.Mu.RLock()
		seen = append(seen, cursor{room.ResultsTabIndex, room.ResultsItemIndex})
		room.Mu.RUnlock()
	}

	// Two chains of three items: walk chain 0 item by item, hop to chain 1,
	// then the final step clamps the tab and completes the reveal.
	assert.Equal(t, []cursor{
		{0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{1, 0},
	}, seen)
}

func TestNextResultRequiresResultsPhase(t *testing.T) {
	g := NewRegistry(testSettings(), nil)
	room, _ := setupRoom(t, g, 2)

	assert.False(t, g.NextResult(room.Id))
	assert.False(t, g.NextResult("NOPE42"))

	require.True(t, g.StartGame(room.Id))
	assert.False(t, g.NextResult(room.Id))
}

func TestResultsSnapshotCarriesChains(t *testing.T) {
	g := NewRegistry(testSettings(), nil)
	room, _ := playToResults(t, g, 3)

	state := g.SnapshotState(room.Id)
	require.NotNil(t, state)
	assert.Equal(t, internal.PhaseResults, state.GameState)
	require.NotNil(t, state.Results)
	assert.Len(t, state.Results.Chains, 3)
	require.NotNil(t, state.ResultsComplete)
	assert.False(t, *state.ResultsComplete)
	assert.Nil(t, state.TimeRemaining)
}
