// Package config provides YAML-based game configuration loading and speed
// presets for the snake arcade.
package config

import "fmt"

// SnakeConfig contains all tunable parameters for a snake session. The board
// and glyph values feed the game core and renderers; nothing in the game
// reads package-level constants, so independent sessions can differ.
type SnakeConfig struct {
	Board  BoardConfig `yaml:"board"`
	Speed  SpeedConfig `yaml:"speed"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// BoardConfig defines the playfield grid.
type BoardConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines how often the snake moves, in simulation ticks.
// At 60 ticks per second, move_every_ticks of 6 matches the classic
// 100ms-per-step cadence.
type SpeedConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// GlyphConfig defines the characters used by the terminal renderer.
// Single-character strings; validated on load.
type GlyphConfig struct {
	Wall string `yaml:"wall"`
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.InitialLength <= 0 {
		return fmt.Errorf("config: initial_length must be positive, got %d", c.Board.InitialLength)
	}
	if c.Board.InitialLength > c.Board.Width {
		return fmt.Errorf("config: initial_length %d does not fit board width %d", c.Board.InitialLength, c.Board.Width)
	}
	if c.Speed.MoveEveryTicks <= 0 {
		return fmt.Errorf("config: move_every_ticks must be positive, got %d", c.Speed.MoveEveryTicks)
	}
	for name, g := range map[string]string{
		"wall": c.Glyphs.Wall,
		"head": c.Glyphs.Head,
		"body": c.Glyphs.Body,
		"food": c.Glyphs.Food,
	} {
		if len([]rune(g)) != 1 {
			return fmt.Errorf("config: glyph %q must be exactly one character, got %q", name, g)
		}
	}
	return nil
}

// Rune returns the single rune of a glyph string, or the fallback when the
// string is empty or malformed.
func Rune(glyph string, fallback rune) rune {
	runes := []rune(glyph)
	if len(runes) != 1 {
		return fallback
	}
	return runes[0]
}

// SpeedPreset is a named movement cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// MoveTicksForPreset returns move_every_ticks for a named preset at the
// default 60 ticks per second. Returns 0 for an unknown preset so callers
// can fall back to the config file value.
func MoveTicksForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 9
	case SpeedNormal:
		return 6
	case SpeedFast:
		return 4
	default:
		return 0
	}
}
