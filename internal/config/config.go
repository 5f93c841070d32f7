package config

import (
	"os"
	"strconv"

	"github.com/telesketch/telesketch-backend/internal"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Room   RoomConfig
}

type ServerConfig struct {
	Host      string
	Port      string
	StaticDir string
}

// RoomConfig carries the default settings a freshly created room starts
// with; hosts adjust them per room from the lobby.
type RoomConfig struct {
	PromptTimeSeconds   int
	DrawingTimeSeconds  int
	GuessingTimeSeconds int
	MaxRounds           int
	MaxPlayers          int
	CanvasWidth         int
	CanvasHeight        int
	PenThickness        int
	AllowClearCanvas    bool
}

// Load reads configuration from environment variables with defaults.
// Call godotenv.Load first so a local .env is honored.
func Load() *Config {
	defaults := internal.DefaultSettings()
	return &Config{
		Server: ServerConfig{
			Host:      getEnv("HOST", "0.0.0.0"),
			Port:      getEnv("PORT", "3000"),
			StaticDir: getEnv("STATIC_DIR", "./public"),
		},
		Room: RoomConfig{
			PromptTimeSeconds:   getEnvInt("PROMPT_TIME_SECONDS", defaults.PromptTimeSeconds),
			DrawingTimeSeconds:  getEnvInt("DRAWING_TIME_SECONDS", defaults.DrawingTimeSeconds),
			GuessingTimeSeconds: getEnvInt("GUESSING_TIME_SECONDS", defaults.GuessingTimeSeconds),
			MaxRounds:           getEnvInt("MAX_ROUNDS", defaults.MaxRounds),
			MaxPlayers:          getEnvInt("MAX_PLAYERS", defaults.MaxPlayers),
			CanvasWidth:         getEnvInt("CANVAS_WIDTH", defaults.CanvasWidth),
			CanvasHeight:        getEnvInt("CANVAS_HEIGHT", defaults.CanvasHeight),
			PenThickness:        getEnvInt("PEN_THICKNESS", defaults.PenThickness),
			AllowClearCanvas:    getEnvBool("ALLOW_CLEAR_CANVAS", defaults.AllowClearCanvas),
		},
	}
}

// RoomSettings converts the configured defaults into room settings.
func (c *Config) RoomSettings() internal.Settings {
	return internal.Settings{
		PromptTimeSeconds:   c.Room.PromptTimeSeconds,
		DrawingTimeSeconds:  c.Room.DrawingTimeSeconds,
		GuessingTimeSeconds: c.Room.GuessingTimeSeconds,
		MaxRounds:           c.Room.MaxRounds,
		MaxPlayers:          c.Room.MaxPlayers,
		CanvasWidth:         c.Room.CanvasWidth,
		CanvasHeight:        c.Room.CanvasHeight,
		PenThickness:        c.Room.PenThickness,
		AllowClearCanvas:    c.Room.AllowClearCanvas,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
