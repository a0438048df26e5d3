// Package config provides YAML-based configuration loading for the maze game.
package config

import (
	"errors"
	"fmt"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Window WindowConfig `yaml:"window"`
	Maze   GridConfig   `yaml:"maze"`
	Coins  CoinConfig   `yaml:"coins"`
	Player PlayerConfig `yaml:"player"`
	Render RenderConfig `yaml:"render"`
}

// WindowConfig is the arena size in pixels. Used to derive the grid size
// when columns or rows are left at zero.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the maze grid.
type GridConfig struct {
	Columns       int `yaml:"columns"` // 0 = window.width / cell_size
	Rows          int `yaml:"rows"`    // 0 = window.height / cell_size
	CellSize      int `yaml:"cell_size"`
	WallThickness int `yaml:"wall_thickness"`
}

// CoinConfig defines coin placement.
type CoinConfig struct {
	Probability float64 `yaml:"probability"` // Per-cell chance, 0.0 to 1.0
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per tick
}

// RenderConfig defines how a maze cell maps onto terminal characters.
type RenderConfig struct {
	CellCharsX int `yaml:"cell_chars_x"`
	CellCharsY int `yaml:"cell_chars_y"`
}

// Columns returns the configured column count, derived from the window
// width when not set explicitly.
func (c MazeConfig) Columns() int {
	if c.Maze.Columns > 0 {
		return c.Maze.Columns
	}
	if c.Maze.CellSize <= 0 {
		return 0
	}
	return c.Window.Width / c.Maze.CellSize
}

// Rows returns the configured row count, derived from the window height
// when not set explicitly.
func (c MazeConfig) Rows() int {
	if c.Maze.Rows > 0 {
		return c.Maze.Rows
	}
	if c.Maze.CellSize <= 0 {
		return 0
	}
	return c.Window.Height / c.Maze.CellSize
}

// MaxPlayerSpeed is the largest step that cannot carry the player, half a
// cell wide, across a wall in one tick. Positions are floored, so a step may
// shift the player rectangle by one pixel more than the speed.
func (c MazeConfig) MaxPlayerSpeed() float64 {
	return float64(c.Maze.CellSize/2 + c.Maze.WallThickness - 1)
}

// Validate checks that the configuration describes a playable maze.
func (c MazeConfig) Validate() error {
	var errs []error

	if c.Maze.CellSize < 4 {
		errs = append(errs, fmt.Errorf("maze.cell_size must be at least 4, got %d", c.Maze.CellSize))
	}
	if c.Maze.WallThickness <= 0 || c.Maze.WallThickness*4 > c.Maze.CellSize {
		errs = append(errs, fmt.Errorf("maze.wall_thickness must be in [1, cell_size/4], got %d", c.Maze.WallThickness))
	}
	if c.Columns() <= 0 {
		errs = append(errs, fmt.Errorf("maze.columns must be positive, got %d", c.Columns()))
	}
	if c.Rows() <= 0 {
		errs = append(errs, fmt.Errorf("maze.rows must be positive, got %d", c.Rows()))
	}
	if c.Coins.Probability < 0 || c.Coins.Probability > 1 {
		errs = append(errs, fmt.Errorf("coins.probability must be in [0, 1], got %g", c.Coins.Probability))
	}
	if c.Player.Speed <= 0 || c.Player.Speed > c.MaxPlayerSpeed() {
		errs = append(errs, fmt.Errorf("player.speed must be in (0, cell_size/2 + wall_thickness - 1 = %g], got %g",
			c.MaxPlayerSpeed(), c.Player.Speed))
	}
	if c.Render.CellCharsX < 2 || c.Render.CellCharsY < 2 {
		errs = append(errs, fmt.Errorf("render cell chars must be at least 2x2, got %dx%d",
			c.Render.CellCharsX, c.Render.CellCharsY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid maze config: %w", errors.Join(errs...))
	}
	return nil
}
