package maze

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/telemetry"
)

// Geometry describes how grid cells map to pixel space.
type Geometry struct {
	CellSize        int     // Cell edge length in pixels
	WallThickness   int     // Wall rectangle thickness in pixels
	CoinProbability float64 // Chance that a given cell holds a coin
}

// DefaultGeometry returns 40px cells, 2px walls and a 10% coin chance.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:        40,
		WallThickness:   2,
		CoinProbability: 0.1,
	}
}

// Layout is everything the session loop needs from a finished maze.
type Layout struct {
	Walls      []core.Rect // One rectangle per remaining wall flag
	Border     []core.Rect // Right and bottom arena edges
	Coins      []core.Rect
	Goal       core.Rect
	Start      core.Vec // Player top-left corner at session start
	PlayerSize int
	Width      int // Arena width in pixels
	Height     int // Arena height in pixels
}

// Solid returns walls and border in a single slice for collision tests.
func (l Layout) Solid() []core.Rect {
	solid := make([]core.Rect, 0, len(l.Walls)+len(l.Border))
	solid = append(solid, l.Walls...)
	return append(solid, l.Border...)
}

// BuildWalls emits a thin horizontal rectangle for every top wall and a thin
// vertical rectangle for every left wall. Cells are visited in index order,
// so the same grid always yields the same slice.
func BuildWalls(g *Grid, geo Geometry) []core.Rect {
	cs, t := geo.CellSize, geo.WallThickness
	walls := make([]core.Rect, 0, 2*g.Len())

	for i, c := range g.cells {
		x, y := g.Coords(i)
		if c.TopWall {
			walls = append(walls, core.NewRect(x*cs, y*cs, cs, t))
		}
		if c.LeftWall {
			walls = append(walls, core.NewRect(x*cs, y*cs, t, cs))
		}
	}
	return walls
}

// BorderWalls closes the right and bottom edges of the arena, which no cell
// flag describes.
func BorderWalls(g *Grid, geo Geometry) []core.Rect {
	w, h := g.columns*geo.CellSize, g.rows*geo.CellSize
	t := geo.WallThickness
	return []core.Rect{
		core.NewRect(w-t, 0, t, h),
		core.NewRect(0, h-t, w, t),
	}
}

// PlaceCoins draws once per cell and places a coin, half a cell wide and
// centered in the cell, whenever the draw falls below the coin probability.
func PlaceCoins(g *Grid, geo Geometry, rng Rand) []core.Rect {
	cs := geo.CellSize
	var coins []core.Rect

	for i := range g.cells {
		if rng.Float64() >= geo.CoinProbability {
			continue
		}
		x, y := g.Coords(i)
		coins = append(coins, cellInterior(x, y, cs))
	}
	return coins
}

// Build derives the full session layout from a finished grid.
func Build(ctx context.Context, g *Grid, geo Geometry, rng Rand) Layout {
	_, span := telemetry.Tracer("maze").Start(ctx, "maze.build")
	defer span.End()

	cs := geo.CellSize
	l := Layout{
		Walls:      BuildWalls(g, geo),
		Border:     BorderWalls(g, geo),
		Coins:      PlaceCoins(g, geo, rng),
		Goal:       cellInterior(g.columns-1, g.rows-1, cs),
		Start:      core.Vec{X: float64(cs / 4), Y: float64(cs / 4)},
		PlayerSize: cs / 2,
		Width:      g.columns * cs,
		Height:     g.rows * cs,
	}

	span.SetAttributes(
		attribute.Int("maze.walls", len(l.Walls)),
		attribute.Int("maze.coins", len(l.Coins)),
	)
	return l
}

// cellInterior is the half-size square centered in cell (x, y).
func cellInterior(x, y, cs int) core.Rect {
	return core.NewRect(x*cs+cs/4, y*cs+cs/4, cs/2, cs/2)
}
