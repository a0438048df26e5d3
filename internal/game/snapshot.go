package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Columns   int
	Rows      int
	Passages  int
	Walls     int
	Score     int
	CoinsLeft int
	PlayerX   float64
	PlayerY   float64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Columns:   g.grid.Columns(),
		Rows:      g.grid.Rows(),
		Passages:  g.grid.Passages(),
		Walls:     len(g.layout.Walls),
		Score:     g.score,
		CoinsLeft: len(g.coins),
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		State:     state,
	}
}
