// Package game implements the maze session: player movement with wall
// collision, coin pickup, score tracking and the goal check.
//
// All state lives in Game. A fresh maze is generated on every Reset from a
// seeded random source, so two games reset with the same RuntimeConfig and
// fed the same inputs stay identical.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

const (
	gameID    = "maze"
	gameTitle = "Maze Runner"
	hudHeight = 2 // Top HUD lines

	defaultTickRate = 30
)

// Game is a single maze session.
type Game struct {
	cfg      config.MazeConfig
	geo      maze.Geometry
	rng      *rand.Rand
	seed     int64
	tick     uint64
	tickRate int

	grid   *maze.Grid
	layout maze.Layout
	solid  []core.Rect
	coins  []core.Rect // Remaining coins, shrinks as they are collected
	player core.Vec
	score  int

	// Screen layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a maze game using the given configuration.
// The configuration is expected to have passed Validate.
func New(cfg config.MazeConfig) *Game {
	return &Game{
		cfg: cfg,
		geo: maze.Geometry{
			CellSize:        cfg.Maze.CellSize,
			WallThickness:   cfg.Maze.WallThickness,
			CoinProbability: cfg.Coins.Probability,
		},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset generates a new maze from cfg.Seed and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	ctx := context.Background()

	g.seed = cfg.Seed
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.grid = maze.Generate(ctx, g.cfg.Columns(), g.cfg.Rows(), g.rng)
	g.layout = maze.Build(ctx, g.grid, g.geo, g.rng)
	g.solid = g.layout.Solid()
	g.coins = append([]core.Rect(nil), g.layout.Coins...)
	g.player = g.layout.Start

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the screen layout without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.grid == nil {
		return
	}

	mapW, mapH := g.mapSize()
	requiredW := mapW
	requiredH := mapH + hudHeight
	if width < requiredW || height < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (width - mapW) / 2
	g.mapOffsetY = hudHeight
}

// mapSize returns the rendered maze size in characters.
func (g *Game) mapSize() (int, int) {
	cw, ch := g.cfg.Render.CellCharsX, g.cfg.Render.CellCharsY
	return g.grid.Columns()*cw + 1, g.grid.Rows()*ch + 1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.movePlayer(input.Direction())
	g.collectCoins()
	g.checkGoal()

	return core.StepResult{State: g.State()}
}

// movePlayer applies one step in direction dir. The whole move is rejected
// if the tentative player rectangle hits any wall.
func (g *Game) movePlayer(dir core.Vec) {
	if dir.IsZero() {
		return
	}

	next := g.player.Add(dir.Scale(g.cfg.Player.Speed))
	if core.RectAt(next, g.layout.PlayerSize).IntersectsAny(g.solid) {
		return
	}
	g.player = next
}

// collectCoins removes every coin the player overlaps and scores it.
func (g *Game) collectCoins() {
	pr := g.playerRect()
	kept := g.coins[:0]
	for _, c := range g.coins {
		if pr.Intersects(c) {
			g.score++
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
}

// checkGoal ends the session once the player overlaps the goal.
func (g *Game) checkGoal() {
	if g.playerRect().Intersects(g.layout.Goal) {
		g.gameOver = true
		g.won = true
	}
}

func (g *Game) playerRect() core.Rect {
	return core.RectAt(g.player, g.layout.PlayerSize)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Grid returns the maze of the current session.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}

// Layout returns the geometry of the current session. Coins reflect the
// initial placement; use CoinsLeft for the remaining count.
func (g *Game) Layout() maze.Layout {
	return g.layout
}

// CoinsLeft returns the number of coins not yet collected.
func (g *Game) CoinsLeft() int {
	return len(g.coins)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Seed: %d, Score: %d\n", g.tick, g.seed, g.score)
	fmt.Fprintf(&b, "Player: (%.1f, %.1f), Coins left: %d\n", g.player.X, g.player.Y, len(g.coins))
	fmt.Fprintf(&b, "GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused)
	return b.String()
}
