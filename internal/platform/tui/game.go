package tui

import "github.com/vovakirdan/tui-maze/internal/core"

// Game is what the platform needs from a game session.
type Game interface {
	// ID returns a stable identifier used in logs and screenshot names.
	ID() string
	// Title returns the display name.
	Title() string
	// Reset starts a new session with the given configuration.
	Reset(cfg core.RuntimeConfig)
	// Step advances the game by one tick.
	Step(input core.InputFrame) core.StepResult
	// Render draws the current state to dst.
	Render(dst *core.Screen)
	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting the session.
type Resizer interface {
	Resize(width, height int)
}

// Factory creates a fresh game for a new session.
type Factory func() Game
