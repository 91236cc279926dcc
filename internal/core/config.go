package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	MaxCombo int  // Longest combo reached this run
	Ticks    int  // Simulation ticks advanced while running
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies a notable gameplay occurrence.
type EventKind int

const (
	EventLevelUp EventKind = iota
	EventLifeLost
	EventPowerUpCollected
	EventGameOver
	EventReset
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventLevelUp:
		return "level_up"
	case EventLifeLost:
		return "life_lost"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Value and Label carry kind-specific detail
// (new level, lives left, power-up name, final score).
type Event struct {
	Kind  EventKind
	Value int
	Label string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
