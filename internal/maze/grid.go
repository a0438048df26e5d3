// Package maze generates perfect mazes and converts them into collision
// geometry.
//
// A Grid stores only two wall flags per cell (top and left). Every interior
// edge is therefore owned by exactly one flag: the edge between a cell and
// its right neighbor is the neighbor's LeftWall, the edge between a cell and
// the one below it is the lower cell's TopWall. Both sides of an edge always
// read the same state. The right and bottom outer edges have no flag and are
// closed implicitly.
package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid neighbors.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order the generator scans them.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the grid offset for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("maze: invalid direction %d", int(d)))
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cell holds the wall flags of a single grid position.
type Cell struct {
	TopWall  bool
	LeftWall bool
}

// Grid is a fixed-size maze stored as a flat, row-major slice of cells.
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

// NewGrid returns a grid of the given size with every wall in place.
// Non-positive dimensions are a programming error and panic.
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("maze: invalid grid size %dx%d", columns, rows))
	}

	cells := make([]Cell, columns*rows)
	for i := range cells {
		cells[i] = Cell{TopWall: true, LeftWall: true}
	}
	return &Grid{columns: columns, rows: rows, cells: cells}
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// Index converts (x, y) to a flat index. Panics when out of range.
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze: cell (%d, %d) outside %dx%d grid", x, y, g.columns, g.rows))
	}
	return y*g.columns + x
}

// Coords converts a flat index back to (x, y).
func (g *Grid) Coords(i int) (x, y int) {
	return i % g.columns, i / g.columns
}

// Cell returns a copy of the cell at (x, y).
func (g *Grid) Cell(x, y int) Cell {
	return g.cells[g.Index(x, y)]
}

// Neighbor returns the coordinates of the cell next to (x, y) in direction d.
// ok is false when that cell would fall outside the grid.
func (g *Grid) Neighbor(x, y int, d Direction) (nx, ny int, ok bool) {
	dx, dy := d.Delta()
	nx, ny = x+dx, y+dy
	return nx, ny, g.InBounds(nx, ny)
}

// edgeFlag returns a pointer to the flag that owns the edge between (x, y)
// and its neighbor in direction d.
func (g *Grid) edgeFlag(x, y int, d Direction) *bool {
	switch d {
	case Up:
		return &g.cells[g.Index(x, y)].TopWall
	case Down:
		return &g.cells[g.Index(x, y+1)].TopWall
	case Left:
		return &g.cells[g.Index(x, y)].LeftWall
	default:
		return &g.cells[g.Index(x+1, y)].LeftWall
	}
}

// RemoveWall opens the edge between two adjacent cells. Calling it with
// cells that are not orthogonal neighbors, or that lie outside the grid,
// panics.
func (g *Grid) RemoveWall(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		panic(fmt.Sprintf("maze: remove wall (%d, %d)-(%d, %d) outside %dx%d grid",
			x1, y1, x2, y2, g.columns, g.rows))
	}

	var d Direction
	switch {
	case x2 == x1 && y2 == y1-1:
		d = Up
	case x2 == x1 && y2 == y1+1:
		d = Down
	case y2 == y1 && x2 == x1-1:
		d = Left
	case y2 == y1 && x2 == x1+1:
		d = Right
	default:
		panic(fmt.Sprintf("maze: cells (%d, %d) and (%d, %d) are not adjacent", x1, y1, x2, y2))
	}

	*g.edgeFlag(x1, y1, d) = false
}

// IsOpen reports whether a passage leads from (x, y) in direction d.
// Edges on the outer boundary are never open.
func (g *Grid) IsOpen(x, y int, d Direction) bool {
	if _, _, ok := g.Neighbor(x, y, d); !ok {
		return false
	}
	return !*g.edgeFlag(x, y, d)
}

// Passages counts the open interior edges.
func (g *Grid) Passages() int {
	n := 0
	for i, c := range g.cells {
		x, y := g.Coords(i)
		if x > 0 && !c.LeftWall {
			n++
		}
		if y > 0 && !c.TopWall {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same shape and walls.
func (g *Grid) Equal(o *Grid) bool {
	if g.columns != o.columns || g.rows != o.rows {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as an ASCII diagram.
func (g *Grid) String() string {
	var b strings.Builder

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			b.WriteByte('+')
			if g.Cell(x, y).TopWall {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		for x := 0; x < g.columns; x++ {
			if g.Cell(x, y).LeftWall {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString("   ")
		}
		b.WriteString("|\n")
	}

	b.WriteString(strings.Repeat("+---", g.columns))
	b.WriteString("+\n")
	return b.String()
}
