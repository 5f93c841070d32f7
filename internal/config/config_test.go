package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telesketch/telesketch-backend/internal"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, internal.DefaultSettings(), cfg.RoomSettings())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_PLAYERS", "12")
	t.Setenv("ALLOW_CLEAR_CANVAS", "false")
	t.Setenv("PROMPT_TIME_SECONDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Room.MaxPlayers)
	assert.False(t, cfg.Room.AllowClearCanvas)
	// Unparseable values fall back to the default.
	assert.Equal(t, internal.DefaultSettings().PromptTimeSeconds, cfg.Room.PromptTimeSeconds)
}
