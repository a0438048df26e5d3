package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultMazeConfig())
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 30,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	if !g1.Grid().Equal(g2.Grid()) {
		t.Fatal("same seed should generate identical mazes")
	}

	inputs := []core.InputFrame{
		frame(core.ActionRight),
		frame(core.ActionDown),
		frame(core.ActionDown, core.ActionRight),
		frame(),
		frame(core.ActionLeft),
	}
	for i := 0; i < 200; i++ {
		in := inputs[i%len(inputs)]
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestStartState(t *testing.T) {
	g := newTestGame(t, 1)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected playing", snap.State)
	}
	if snap.Columns != 20 || snap.Rows != 15 {
		t.Errorf("grid = %dx%d, expected 20x15", snap.Columns, snap.Rows)
	}
	if snap.Passages != 20*15-1 {
		t.Errorf("Passages = %d, expected %d", snap.Passages, 20*15-1)
	}
	if snap.PlayerX != 10 || snap.PlayerY != 10 {
		t.Errorf("player starts at (%.0f, %.0f), expected (10, 10)", snap.PlayerX, snap.PlayerY)
	}
	if g.CoinsLeft() != len(g.Layout().Coins) {
		t.Errorf("CoinsLeft = %d, expected %d", g.CoinsLeft(), len(g.Layout().Coins))
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	g := newTestGame(t, 2)
	g.coins = nil

	// Touching the outer left wall is allowed; stepping into it is not.
	g.player = core.Vec{X: 2, Y: 10}
	g.Step(frame(core.ActionLeft))
	if g.player.X != 2 || g.player.Y != 10 {
		t.Errorf("player moved into wall: (%.1f, %.1f)", g.player.X, g.player.Y)
	}

	// Free move inside the start cell.
	g.Step(frame(core.ActionRight))
	if g.player.X != 7 {
		t.Errorf("player X = %.1f after free move, expected 7", g.player.X)
	}
}

func TestFastestStepCannotCrossWall(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Player.Speed = cfg.MaxPlayerSpeed()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("max speed config should be valid: %v", err)
	}

	// Find a maze where the edge between (0,0) and (1,0) is closed.
	g := New(cfg)
	found := false
	for seed := int64(1); seed <= 100 && !found; seed++ {
		g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 120, ScreenH: 40})
		found = !g.Grid().IsOpen(0, 0, maze.Right)
	}
	if !found {
		t.Fatal("no seed produced a closed wall right of the start cell")
	}
	g.coins = nil

	for x := 2.0; x <= 20; x += 0.5 {
		g.player = core.Vec{X: x, Y: 10}
		g.Step(frame(core.ActionRight))
		if g.player.X != x {
			t.Errorf("step of %.0f from x=%.1f crossed a closed wall, player at %.1f",
				cfg.Player.Speed, x, g.player.X)
		}
	}
}

func TestBlockedMoveRejectsWholeVector(t *testing.T) {
	g := newTestGame(t, 3)
	g.coins = nil

	// Right alone is free, but up would enter the top wall: nothing moves.
	g.player = core.Vec{X: 10, Y: 2}
	g.Step(frame(core.ActionUp, core.ActionRight))
	if g.player.X != 10 || g.player.Y != 2 {
		t.Errorf("diagonal move should be rejected entirely, player at (%.1f, %.1f)", g.player.X, g.player.Y)
	}
}

func TestCoinPickup(t *testing.T) {
	g := newTestGame(t, 4)

	g.player = core.Vec{X: 10, Y: 10}
	g.coins = []core.Rect{
		core.NewRect(10, 10, 20, 20), // under the player
		core.NewRect(50, 50, 20, 20), // elsewhere
	}
	g.score = 0

	g.Step(frame())
	if g.score != 1 {
		t.Errorf("score = %d after pickup, expected 1", g.score)
	}
	if g.CoinsLeft() != 1 {
		t.Errorf("CoinsLeft = %d, expected 1", g.CoinsLeft())
	}

	// Coins never come back.
	g.Step(frame())
	if g.score != 1 || g.CoinsLeft() != 1 {
		t.Errorf("score/coins changed without new overlap: %d/%d", g.score, g.CoinsLeft())
	}
}

func TestGoalEndsSessionWithScoreUnchanged(t *testing.T) {
	g := newTestGame(t, 5)
	g.coins = nil
	g.score = 3

	goal := g.Layout().Goal
	g.player = core.Vec{X: float64(goal.X), Y: float64(goal.Y)}

	result := g.Step(frame())
	if !result.State.GameOver || !result.State.Won {
		t.Fatalf("reaching the goal should end the session, got %+v", result.State)
	}
	if result.State.Score != 3 {
		t.Errorf("score = %d, expected 3", result.State.Score)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("State = %s, expected win", g.Snapshot().State)
	}

	// Further input is ignored until restart.
	before := g.player
	g.Step(frame(core.ActionLeft))
	if g.player != before {
		t.Error("player should not move after the session ended")
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := newTestGame(t, 6)
	g.coins = nil

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.player
	g.Step(frame(core.ActionRight))
	if g.player != before {
		t.Error("player should not move while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 7)

	// Restart is ignored mid-session.
	g.Step(frame(core.ActionRestart))
	if g.seed != 7 {
		t.Fatal("restart should be ignored while playing")
	}

	g.gameOver, g.won, g.score = true, true, 9
	g.Step(frame(core.ActionRestart))

	state := g.State()
	if state.GameOver || state.Won || state.Score != 0 {
		t.Errorf("restart should start a fresh session, got %+v", state)
	}
	if g.seed == 7 {
		t.Error("restart should draw a new seed")
	}
	if g.Grid().Passages() != 20*15-1 {
		t.Error("restart should generate a full maze")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(config.DefaultMazeConfig())
	g.Reset(core.RuntimeConfig{Seed: 8, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Fatal("game should detect window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected paused_small_window", g.Snapshot().State)
	}

	before := g.player
	g.Step(frame(core.ActionRight))
	if g.player != before {
		t.Error("player should not move while the window is too small")
	}

	// Growing the window keeps the same maze.
	grid := g.Grid()
	g.Resize(120, 40)
	if g.tooSmall {
		t.Error("window should now be large enough")
	}
	if g.Grid() != grid {
		t.Error("resize must not regenerate the maze")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 9)

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	content := screen.String()

	for _, want := range []string{"Maze 20x15", "Score: 0", "@", "G", "+--"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered screen should contain %q", want)
		}
	}

	// Player sprite sits inside the first cell interior.
	if c := screen.GetCell(g.mapOffsetX+2, g.mapOffsetY+1); c.Rune != '@' || c.Color != core.ColorBrightRed {
		t.Errorf("expected red player glyph in first cell, got %+v", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DefaultMazeConfig())
	g.Reset(core.RuntimeConfig{Seed: 10, ScreenW: 40, ScreenH: 12})

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window should render the resize hint")
	}
}

// solve returns the cells on the unique path from (0,0) to the last cell.
func solve(g *maze.Grid) [][2]int {
	target := g.Len() - 1
	parent := make([]int, g.Len())
	for i := range parent {
		parent[i] = -1
	}
	parent[0] = 0
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := g.Coords(cur)
		for _, d := range maze.Directions {
			if !g.IsOpen(x, y, d) {
				continue
			}
			nx, ny, _ := g.Neighbor(x, y, d)
			idx := g.Index(nx, ny)
			if parent[idx] == -1 {
				parent[idx] = cur
				queue = append(queue, idx)
			}
		}
	}

	var path [][2]int
	for cur := target; ; cur = parent[cur] {
		x, y := g.Coords(cur)
		path = append([][2]int{{x, y}}, path...)
		if cur == 0 {
			break
		}
	}
	return path
}

func TestWalkSolutionReachesGoal(t *testing.T) {
	for _, seed := range []int64{11, 22, 33} {
		g := newTestGame(t, seed)
		initialCoins := g.CoinsLeft()
		cs := float64(g.geo.CellSize)
		quarter := cs / 4

		for _, cell := range solve(g.Grid())[1:] {
			tx, ty := float64(cell[0])*cs+quarter, float64(cell[1])*cs+quarter
			for steps := 0; (g.player.X != tx || g.player.Y != ty) && !g.gameOver; steps++ {
				if steps > 100 {
					t.Fatalf("seed %d: stuck at (%.1f, %.1f) heading to %v", seed, g.player.X, g.player.Y, cell)
				}
				var in core.InputFrame
				switch {
				case g.player.X < tx:
					in = frame(core.ActionRight)
				case g.player.X > tx:
					in = frame(core.ActionLeft)
				case g.player.Y < ty:
					in = frame(core.ActionDown)
				default:
					in = frame(core.ActionUp)
				}
				before := g.player
				g.Step(in)
				if g.player == before && !g.gameOver {
					t.Fatalf("seed %d: blocked at (%.1f, %.1f) heading to %v", seed, g.player.X, g.player.Y, cell)
				}
			}
		}

		state := g.State()
		if !state.Won {
			t.Errorf("seed %d: walking the solution should win", seed)
		}
		if state.Score != initialCoins-g.CoinsLeft() {
			t.Errorf("seed %d: score %d should equal coins collected %d", seed, state.Score, initialCoins-g.CoinsLeft())
		}
	}
}

func TestIDAndTitle(t *testing.T) {
	g := New(config.DefaultMazeConfig())
	if g.ID() != "maze" {
		t.Errorf("ID() = %s, expected maze", g.ID())
	}
	if g.Title() != "Maze Runner" {
		t.Errorf("Title() = %s, expected Maze Runner", g.Title())
	}
}
