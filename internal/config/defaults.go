package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration: an 800x600
// arena of 40px cells, giving a 20x15 grid.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Maze: GridConfig{
			CellSize:      40,
			WallThickness: 2,
		},
		Coins: CoinConfig{
			Probability: 0.1,
		},
		Player: PlayerConfig{
			Speed: 5,
		},
		Render: RenderConfig{
			CellCharsX: 3,
			CellCharsY: 2,
		},
	}
}
