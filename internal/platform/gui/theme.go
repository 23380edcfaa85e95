// Package gui provides the raylib frontend: a windowed variant of the same
// game core the terminal plays, with selectable color themes.
package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme is the palette for the graphical variant.
type Theme struct {
	Name          string
	GradientTop   rl.Color
	GradientBot   rl.Color
	Playfield     rl.Color
	Border        rl.Color
	Grid          rl.Color
	SnakeHead     rl.Color
	SnakeBody     rl.Color
	Food          rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	Overlay       rl.Color
}

// Themes returns the available palettes.
func Themes() []Theme {
	return []Theme{
		{
			Name:          "Classic Green",
			GradientTop:   rl.NewColor(16, 64, 32, 255),
			GradientBot:   rl.NewColor(20, 120, 60, 255),
			Playfield:     rl.NewColor(24, 40, 24, 255),
			Border:        rl.NewColor(70, 170, 90, 255),
			Grid:          rl.NewColor(60, 110, 70, 255),
			SnakeHead:     rl.NewColor(240, 250, 90, 255),
			SnakeBody:     rl.NewColor(120, 220, 90, 255),
			Food:          rl.NewColor(255, 80, 90, 255),
			TextPrimary:   rl.NewColor(235, 250, 230, 255),
			TextSecondary: rl.NewColor(200, 220, 205, 255),
			Overlay:       rl.NewColor(10, 30, 15, 180),
		},
		{
			Name:          "Ocean Blue",
			GradientTop:   rl.NewColor(15, 40, 80, 255),
			GradientBot:   rl.NewColor(25, 120, 180, 255),
			Playfield:     rl.NewColor(18, 55, 95, 255),
			Border:        rl.NewColor(90, 170, 220, 255),
			Grid:          rl.NewColor(70, 125, 170, 255),
			SnakeHead:     rl.NewColor(255, 255, 255, 255),
			SnakeBody:     rl.NewColor(120, 200, 255, 255),
			Food:          rl.NewColor(255, 150, 80, 255),
			TextPrimary:   rl.NewColor(225, 240, 255, 255),
			TextSecondary: rl.NewColor(200, 220, 245, 255),
			Overlay:       rl.NewColor(10, 30, 55, 180),
		},
		{
			Name:          "Cyberpunk",
			GradientTop:   rl.NewColor(40, 0, 60, 255),
			GradientBot:   rl.NewColor(140, 10, 160, 255),
			Playfield:     rl.NewColor(45, 10, 65, 255),
			Border:        rl.NewColor(255, 0, 110, 255),
			Grid:          rl.NewColor(120, 45, 150, 255),
			SnakeHead:     rl.NewColor(10, 255, 240, 255),
			SnakeBody:     rl.NewColor(180, 50, 255, 255),
			Food:          rl.NewColor(255, 70, 180, 255),
			TextPrimary:   rl.NewColor(240, 220, 255, 255),
			TextSecondary: rl.NewColor(215, 200, 230, 255),
			Overlay:       rl.NewColor(40, 5, 70, 190),
		},
	}
}

// ThemeIndexByName finds a theme by case-insensitive name.
// Returns 0 (the first theme) when the name is unknown or empty.
func ThemeIndexByName(name string) int {
	for i, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return 0
}
