package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSnakeEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Board.Width != 40 || cfg.Board.Height != 20 {
		t.Errorf("Default board = %dx%d, expected 40x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.InitialLength != 5 {
		t.Errorf("Default initial_length = %d, expected 5", cfg.Board.InitialLength)
	}
	if cfg.Speed.MoveEveryTicks != 6 {
		t.Errorf("Default move_every_ticks = %d, expected 6", cfg.Speed.MoveEveryTicks)
	}
	if cfg.Glyphs.Head != "@" || cfg.Glyphs.Body != "o" || cfg.Glyphs.Food != "*" || cfg.Glyphs.Wall != "#" {
		t.Errorf("Default glyphs = %+v, expected classic set", cfg.Glyphs)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")

	custom := `
board:
  width: 12
  height: 8
  initial_length: 3
speed:
  move_every_ticks: 4
glyphs:
  wall: "%"
  head: "H"
  body: "b"
  food: "f"
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 12 || cfg.Board.Height != 8 {
		t.Errorf("Board = %dx%d, expected 12x8", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Glyphs.Head != "H" {
		t.Errorf("Head glyph = %q, expected H", cfg.Glyphs.Head)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	if _, err := LoadSnake("/nonexistent/snake.yaml"); err == nil {
		t.Error("LoadSnake with a missing explicit path should fail")
	}
}

func TestLoadSnakeInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")

	bad := `
board:
  width: 0
  height: 20
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadSnake(path); err == nil {
		t.Error("LoadSnake with invalid board dimensions should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"default is valid", func(c *SnakeConfig) {}, false},
		{"zero width", func(c *SnakeConfig) { c.Board.Width = 0 }, true},
		{"negative height", func(c *SnakeConfig) { c.Board.Height = -1 }, true},
		{"zero initial length", func(c *SnakeConfig) { c.Board.InitialLength = 0 }, true},
		{"snake longer than board", func(c *SnakeConfig) { c.Board.InitialLength = 99 }, true},
		{"zero move ticks", func(c *SnakeConfig) { c.Speed.MoveEveryTicks = 0 }, true},
		{"empty glyph", func(c *SnakeConfig) { c.Glyphs.Food = "" }, true},
		{"multi-char glyph", func(c *SnakeConfig) { c.Glyphs.Wall = "##" }, true},
		{"unicode glyph", func(c *SnakeConfig) { c.Glyphs.Food = "●" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestApplySpeedPreset(t *testing.T) {
	tests := []struct {
		preset   SpeedPreset
		expected int
	}{
		{SpeedSlow, 9},
		{SpeedNormal, 6},
		{SpeedFast, 4},
		{SpeedPreset("bogus"), 6}, // unchanged from default
		{SpeedPreset(""), 6},      // unchanged from default
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySpeedPreset(&cfg, tc.preset)
		if cfg.Speed.MoveEveryTicks != tc.expected {
			t.Errorf("ApplySpeedPreset(%q) -> %d ticks, expected %d", tc.preset, cfg.Speed.MoveEveryTicks, tc.expected)
		}
	}
}

func TestRune(t *testing.T) {
	if got := Rune("@", '?'); got != '@' {
		t.Errorf("Rune(\"@\") = %q, expected '@'", got)
	}
	if got := Rune("", '?'); got != '?' {
		t.Errorf("Rune(\"\") = %q, expected fallback", got)
	}
	if got := Rune("ab", '?'); got != '?' {
		t.Errorf("Rune(\"ab\") = %q, expected fallback", got)
	}
	if got := Rune("●", '?'); got != '●' {
		t.Errorf("Rune(\"●\") = %q, expected '●'", got)
	}
}
