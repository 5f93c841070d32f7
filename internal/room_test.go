package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom(turnOrder ...string) *Room {
	room := &Room{
		Id:        "ABC123",
		Settings:  DefaultSettings(),
		GameState: PhaseLobby,
		Players:   make(map[string]*Player),
		TurnOrder: turnOrder,
	}
	for _, id := range turnOrder {
		room.Players[id] = NewPlayer(id, "name-"+id, false)
		room.JoinOrder = append(room.JoinOrder, id)
	}
	room.ResetGameData()
	return room
}

func TestPreviousOwner(t *testing.T) {
	tests := []struct {
		order    []string
		index    int
		expected string
	}{
		{[]string{"a"}, 0, "a"},
		{[]string{"a", "b"}, 0, "b"},
		{[]string{"a", "b"}, 1, "a"},
		{[]string{"a", "b", "c"}, 0, "c"},
		{[]string{"a", "b", "c"}, 1, "a"},
		{[]string{"a", "b", "c"}, 2, "b"},
	}

	for _, tt := range tests {
		room := newTestRoom(tt.order...)
		assert.Equal(t, tt.expected, room.PreviousOwner(tt.index))
	}
}

func TestBuildPromptAssignments(t *testing.T) {
	room := newTestRoom("a", "b", "c")
	room.CurrentTexts = map[string]string{"a": "cat", "b": "dog", "c": "fish"}

	room.BuildPromptAssignments()

	assert.Equal(t, PromptAssignment{PromptOwnerID: "c", PromptText: "fish"}, room.PromptAssignments["a"])
	assert.Equal(t, PromptAssignment{PromptOwnerID: "a", PromptText: "cat"}, room.PromptAssignments["b"])
	assert.Equal(t, PromptAssignment{PromptOwnerID: "b", PromptText: "dog"}, room.PromptAssignments["c"])
}

func TestBuildDrawingAssignmentsChainOwnerFallback(t *testing.T) {
	room := newTestRoom("a", "b")

	// Without prompt assignments the chain owner defaults to the drawer.
	room.BuildDrawingAssignments()
	assert.Equal(t, "b", room.DrawingAssignments["a"].ChainOwnerID)
	assert.Equal(t, "a", room.DrawingAssignments["b"].ChainOwnerID)

	// With prompt assignments the chain owner sits two hops back.
	room.CurrentTexts = map[string]string{"a": "x", "b": "y"}
	room.BuildPromptAssignments()
	room.BuildDrawingAssignments()
	assert.Equal(t, "a", room.DrawingAssignments["a"].ChainOwnerID)
	assert.Equal(t, "b", room.DrawingAssignments["b"].ChainOwnerID)
}

func TestBuildDrawingAssignmentsMissingDrawing(t *testing.T) {
	room := newTestRoom("a", "b")
	room.Drawings["a"] = Drawing{}

	room.BuildDrawingAssignments()

	// A drawer who never submitted yields an empty drawing, never nil.
	require.Contains(t, room.DrawingAssignments, "a")
	assert.NotNil(t, room.DrawingAssignments["a"].Drawing)
	assert.NotNil(t, room.DrawingAssignments["b"].Drawing)
}

func TestResetGameData(t *testing.T) {
	room := newTestRoom("a", "b")
	room.Prompts["a"] = "cat"
	room.CurrentTexts["a"] = "cat"
	room.AllGameText = append(room.AllGameText, "Prompt: cat")
	room.AppendChainItem("a", ChainItem{Type: ChainPrompt, PlayerID: "a", Text: "cat"})
	room.BuildPromptAssignments()
	room.BuildRoundChains()
	room.ResultsTabIndex = 1
	room.ResultsComplete = true

	room.ResetGameData()

	assert.Empty(t, room.Prompts)
	assert.Empty(t, room.Drawings)
	assert.Empty(t, room.Guesses)
	assert.Empty(t, room.PromptAssignments)
	assert.Empty(t, room.DrawingAssignments)
	assert.Empty(t, room.ChainItems)
	assert.Empty(t, room.CurrentTexts)
	assert.Empty(t, room.AllGameText)
	assert.Nil(t, room.RoundChains)
	assert.Zero(t, room.ResultsTabIndex)
	assert.Zero(t, room.ResultsItemIndex)
	assert.False(t, room.ResultsComplete)
}

func TestPhaseDuration(t *testing.T) {
	room := newTestRoom("a")
	room.Settings.PromptTimeSeconds = 45
	room.Settings.DrawingTimeSeconds = 90
	room.Settings.GuessingTimeSeconds = 30

	assert.Equal(t, 45*time.Second, room.PhaseDuration(PhasePrompt))
	assert.Equal(t, 90*time.Second, room.PhaseDuration(PhaseDrawing))
	assert.Equal(t, 30*time.Second, room.PhaseDuration(PhaseGuessing))
	assert.Zero(t, room.PhaseDuration(PhaseLobby))
	assert.Zero(t, room.PhaseDuration(PhaseResults))
}

func TestOrderedPlayers(t *testing.T) {
	room := newTestRoom("c", "a", "b")

	players := room.OrderedPlayers()
	require.Len(t, players, 3)
	assert.Equal(t, "c", players[0].Id)
	assert.Equal(t, "a", players[1].Id)
	assert.Equal(t, "b", players[2].Id)
}

func TestSettingsApply(t *testing.T) {
	settings := DefaultSettings()

	maxRounds := 3
	allowClear := false
	settings.Apply(SettingsPatch{
		MaxRounds:        &maxRounds,
		AllowClearCanvas: &allowClear,
	})

	assert.Equal(t, 3, settings.MaxRounds)
	assert.False(t, settings.AllowClearCanvas)

	defaults := DefaultSettings()
	assert.Equal(t, defaults.PromptTimeSeconds, settings.PromptTimeSeconds)
	assert.Equal(t, defaults.DrawingTimeSeconds, settings.DrawingTimeSeconds)
	assert.Equal(t, defaults.MaxPlayers, settings.MaxPlayers)

	// An empty patch changes nothing.
	before := settings
	settings.Apply(SettingsPatch{})
	assert.Equal(t, before, settings)
}
