package core

// Color is a foreground color for a screen cell, mapped to ANSI colors
// by the terminal renderer.
type Color uint8

// Colors used by the game elements and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
