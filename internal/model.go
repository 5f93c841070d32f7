package internal

import (
	"context"
	"sync"
	"time"
)

type GamePhase string

const (
	PhaseLobby    GamePhase = "lobby"
	PhasePrompt   GamePhase = "prompt"
	PhaseDrawing  GamePhase = "drawing"
	PhaseGuessing GamePhase = "guessing"
	PhaseResults  GamePhase = "results"
	PhaseFinished GamePhase = "finished"
)

// Settings are caller-validated; the core only merges and reads them.
type Settings struct {
	PromptTimeSeconds   int  `json:"promptTimeSeconds"`
	DrawingTimeSeconds  int  `json:"drawingTimeSeconds"`
	GuessingTimeSeconds int  `json:"guessingTimeSeconds"`
	MaxRounds           int  `json:"maxRounds"`
	MaxPlayers          int  `json:"maxPlayers"`
	CanvasWidth         int  `json:"canvasWidth"`
	CanvasHeight        int  `json:"canvasHeight"`
	PenThickness        int  `json:"penThickness"`
	AllowClearCanvas    bool `json:"allowClearCanvas"`
}

func DefaultSettings() Settings {
	return Settings{
		PromptTimeSeconds:   45,
		DrawingTimeSeconds:  90,
		GuessingTimeSeconds: 45,
		MaxRounds:           1,
		MaxPlayers:          8,
		CanvasWidth:         800,
		CanvasHeight:        600,
		PenThickness:        10,
		AllowClearCanvas:    true,
	}
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	PromptTimeSeconds   *int  `json:"promptTimeSeconds,omitempty"`
	DrawingTimeSeconds  *int  `json:"drawingTimeSeconds,omitempty"`
	GuessingTimeSeconds *int  `json:"guessingTimeSeconds,omitempty"`
	MaxRounds           *int  `json:"maxRounds,omitempty"`
	MaxPlayers          *int  `json:"maxPlayers,omitempty"`
	CanvasWidth         *int  `json:"canvasWidth,omitempty"`
	CanvasHeight        *int  `json:"canvasHeight,omitempty"`
	PenThickness        *int  `json:"penThickness,omitempty"`
	AllowClearCanvas    *bool `json:"allowClearCanvas,omitempty"`
}

// Apply shallow-merges the patch into the settings.
func (s *Settings) Apply(p SettingsPatch) {
	if p.PromptTimeSeconds != nil {
		s.PromptTimeSeconds = *p.PromptTimeSeconds
	}
	if p.DrawingTimeSeconds != nil {
		s.DrawingTimeSeconds = *p.DrawingTimeSeconds
	}
	if p.GuessingTimeSeconds != nil {
		s.GuessingTimeSeconds = *p.GuessingTimeSeconds
	}
	if p.MaxRounds != nil {
		s.MaxRounds = *p.MaxRounds
	}
	if p.MaxPlayers != nil {
		s.MaxPlayers = *p.MaxPlayers
	}
	if p.CanvasWidth != nil {
		s.CanvasWidth = *p.CanvasWidth
	}
	if p.CanvasHeight != nil {
		s.CanvasHeight = *p.CanvasHeight
	}
	if p.PenThickness != nil {
		s.PenThickness = *p.PenThickness
	}
	if p.AllowClearCanvas != nil {
		s.AllowClearCanvas = *p.AllowClearCanvas
	}
}

type ChainItemType string

const (
	ChainPrompt  ChainItemType = "prompt"
	ChainDrawing ChainItemType = "drawing"
	ChainGuess   ChainItemType = "guess"
)

// ChainItem is one entry in a player's telephone chain: the seeding prompt,
// then alternating drawings and guesses contributed by other players.
type ChainItem struct {
	Type       ChainItemType `json:"type"`
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Text       string        `json:"text,omitempty"`
	Drawing    Drawing       `json:"drawing,omitempty"`
	PNG        string        `json:"png,omitempty"`
}

// PromptAssignment tells a player whose text they must draw.
type PromptAssignment struct {
	PromptOwnerID string `json:"promptOwnerId"`
	PromptText    string `json:"promptText"`
}

// DrawingAssignment tells a player whose drawing they must guess.
// ChainOwnerID is the owner of the chain the resulting guess is credited to,
// which sits two rotation hops behind the receiver.
type DrawingAssignment struct {
	DrawingOwnerID string  `json:"drawingOwnerId"`
	Drawing        Drawing `json:"drawing"`
	ChainOwnerID   string  `json:"chainOwnerId"`
}

// RoundChain is the finalized reveal view of one owner's chain.
type RoundChain struct {
	OwnerID   string      `json:"ownerId"`
	OwnerName string      `json:"ownerName"`
	Items     []ChainItem `json:"items"`
}

// GameTimer is the scheduled phase deadline. The context doubles as the
// identity of the arming: a callback whose context no longer matches the
// room's timer is stale and must not act.
type GameTimer struct {
	StartTime time.Time
	Duration  time.Duration
	Context   context.Context
	Cancel    context.CancelFunc
}

// Room is the aggregate root. All mutation happens under Mu, which is held
// for the full action including any cascading phase-end.
type Room struct {
	Id        string
	Host      string
	Players   map[string]*Player
	JoinOrder []string
	Settings  Settings

	GameState     GamePhase
	CurrentRound  int
	CurrentDrawer string
	TurnOrder     []string

	// Per-phase submissions, cleared and rebuilt every phase.
	Prompts  map[string]string
	Drawings map[string]Drawing
	Guesses  map[string]string

	PromptAssignments  map[string]PromptAssignment
	DrawingAssignments map[string]DrawingAssignment

	// Game-lifetime accumulators, reset on start/return-to-lobby/abort.
	ChainItems   map[string][]ChainItem
	CurrentTexts map[string]string
	AllGameText  []string

	RoundChains      []RoundChain
	ResultsTabIndex  int
	ResultsItemIndex int
	ResultsComplete  bool

	RoundStartTime time.Time
	Timer          *GameTimer
	IsPaused       bool
	RemainingTime  time.Duration

	Mu sync.RWMutex
}
