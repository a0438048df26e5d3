package maze

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/tui-maze/internal/telemetry"
)

// Rand is the random source consumed by generation and coin placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generate builds a perfect maze of the given size using randomized
// recursive backtracking, starting from (0, 0).
//
// The traversal uses an explicit stack, so depth is bounded by the number of
// cells rather than the goroutine stack. The result is fully determined by
// the sequence of values rng returns.
func Generate(ctx context.Context, columns, rows int, rng Rand) *Grid {
	_, span := telemetry.Tracer("maze").Start(ctx, "maze.generate")
	defer span.End()

	start := time.Now()

	g := NewGrid(columns, rows)
	visited := make([]bool, g.Len())
	stack := make([]int, 0, g.Len())

	visited[0] = true
	stack = append(stack, 0)

	var candidates [len(Directions)]int
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		x, y := g.Coords(cur)

		n := 0
		for _, d := range Directions {
			nx, ny, ok := g.Neighbor(x, y, d)
			if !ok {
				continue
			}
			if idx := g.Index(nx, ny); !visited[idx] {
				candidates[n] = idx
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(n)]
		visited[next] = true
		nx, ny := g.Coords(next)
		g.RemoveWall(x, y, nx, ny)
		stack = append(stack, next)
	}

	span.SetAttributes(
		attribute.Int("maze.columns", columns),
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.passages", g.Passages()),
		attribute.Int64("maze.generation_us", time.Since(start).Microseconds()),
	)

	return g
}
