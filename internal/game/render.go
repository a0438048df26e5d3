package game

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Render draws the game to the screen.
//
// Each maze cell occupies CellCharsX x CellCharsY characters with its
// top-left corner on the wall grid. Pixel positions are projected into the
// interior of the cell they fall in, so a sprite never lands on a wall line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		mapW, mapH := g.mapSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, mapH+hudHeight))
		return
	}

	g.renderWalls(dst)

	for _, c := range g.coins {
		g.renderSprite(dst, c, '$', core.ColorBrightYellow)
	}
	g.renderSprite(dst, g.layout.Goal, 'G', core.ColorBrightBlue)
	g.renderSprite(dst, g.playerRect(), '@', core.ColorBrightRed)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze %dx%d | Score: %d  Coins left: %d  Time: %ds",
		g.grid.Columns(), g.grid.Rows(), g.score, len(g.coins), g.seconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// seconds converts ticks to elapsed seconds at the session tick rate.
func (g *Game) seconds() int {
	return int(g.tick / uint64(g.tickRate))
}

// renderWalls draws the wall grid from the cell flags.
func (g *Game) renderWalls(dst *core.Screen) {
	cw, ch := g.cfg.Render.CellCharsX, g.cfg.Render.CellCharsY
	cols, rows := g.grid.Columns(), g.grid.Rows()
	ox, oy := g.mapOffsetX, g.mapOffsetY

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := g.grid.Cell(x, y)
			sx, sy := ox+x*cw, oy+y*ch

			dst.SetColored(sx, sy, '+', core.ColorGray)
			if c.TopWall {
				for i := 1; i < cw; i++ {
					dst.SetColored(sx+i, sy, '-', core.ColorWhite)
				}
			}
			if c.LeftWall {
				for j := 1; j < ch; j++ {
					dst.SetColored(sx, sy+j, '|', core.ColorWhite)
				}
			}
		}

		// Right border
		rx := ox + cols*cw
		dst.SetColored(rx, oy+y*ch, '+', core.ColorGray)
		for j := 1; j < ch; j++ {
			dst.SetColored(rx, oy+y*ch+j, '|', core.ColorWhite)
		}
	}

	// Bottom border
	by := oy + rows*ch
	for x := 0; x <= cols; x++ {
		dst.SetColored(ox+x*cw, by, '+', core.ColorGray)
		if x == cols {
			break
		}
		for i := 1; i < cw; i++ {
			dst.SetColored(ox+x*cw+i, by, '-', core.ColorWhite)
		}
	}
}

// renderSprite draws r as a single glyph at its projected center.
func (g *Game) renderSprite(dst *core.Screen, r core.Rect, glyph rune, color core.Color) {
	px, py := r.Center()
	sx := g.mapOffsetX + g.project(px, g.cfg.Render.CellCharsX)
	sy := g.mapOffsetY + g.project(py, g.cfg.Render.CellCharsY)
	dst.SetColored(sx, sy, glyph, color)
}

// project maps a pixel coordinate onto a character offset inside the
// interior of its cell.
func (g *Game) project(p, chars int) int {
	cs := g.geo.CellSize
	cell := p / cs
	local := core.Clamp(p-cell*cs, 0, cs-1)
	return cell*chars + 1 + local*(chars-1)/cs
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
