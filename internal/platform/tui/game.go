package tui

import "github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"

// Game is what the terminal front end drives. Implementations contain pure
// logic with no Bubble Tea dependency; the platform handles input mapping,
// timing and rendering.
type Game interface {
	// ID returns the identifier runs are stored under.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given runtime.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameFactory builds a fresh game for a difficulty preset name.
type GameFactory func(preset string) (Game, error)
