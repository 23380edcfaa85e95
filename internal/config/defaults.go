package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: the classic 40x20
// board, 5-cell snake, one step every 6 ticks, and the traditional glyphs.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:         40,
			Height:        20,
			InitialLength: 5,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 6,
		},
		Glyphs: GlyphConfig{
			Wall: "#",
			Head: "@",
			Body: "o",
			Food: "*",
		},
	}
}
