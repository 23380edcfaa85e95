package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DarrenOsborne/snake-arcade/internal/game"
)

// Layout constants for the window.
const (
	windowWidth   = 960
	windowHeight  = 720
	playfieldTop  = 140
	borderPadding = 16
	hudFontSize   = 28
	titleFontSize = 56
)

// Renderer computes the playfield layout for the current window size and
// draws the game with the active theme.
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
	fieldW   int32
	fieldH   int32
	boardW   int32
	boardH   int32
}

// NewRenderer creates a renderer for the given board dimensions.
func NewRenderer(boardW, boardH int) *Renderer {
	r := &Renderer{
		boardW: int32(boardW),
		boardH: int32(boardH),
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the cell size and centering offsets from the
// current window size. Called each frame so window resizes just work.
func (r *Renderer) UpdateDimensions() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	availableW := screenW - 2*borderPadding
	availableH := screenH - playfieldTop - borderPadding

	cellW := availableW / r.boardW
	cellH := availableH / r.boardH
	r.cellSize = cellW
	if cellH < cellW {
		r.cellSize = cellH
	}
	if r.cellSize < 4 {
		r.cellSize = 4
	}

	r.fieldW = r.cellSize * r.boardW
	r.fieldH = r.cellSize * r.boardH
	r.offsetX = (screenW - r.fieldW) / 2
	r.offsetY = playfieldTop + (availableH-r.fieldH)/2
}

// Draw renders one frame: background gradient, playfield, grid, food, snake,
// and the HUD.
func (r *Renderer) Draw(g *game.Game, theme Theme, highScore int, paused bool) {
	r.UpdateDimensions()

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, theme.GradientTop, theme.GradientBot)

	// Playfield with border
	rl.DrawRectangle(r.offsetX-2, r.offsetY-2, r.fieldW+4, r.fieldH+4, theme.Border)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.fieldW, r.fieldH, theme.Playfield)

	// Grid lines
	for x := int32(0); x <= r.boardW; x++ {
		rl.DrawLine(r.offsetX+x*r.cellSize, r.offsetY, r.offsetX+x*r.cellSize, r.offsetY+r.fieldH, theme.Grid)
	}
	for y := int32(0); y <= r.boardH; y++ {
		rl.DrawLine(r.offsetX, r.offsetY+y*r.cellSize, r.offsetX+r.fieldW, r.offsetY+y*r.cellSize, theme.Grid)
	}

	// Food
	if food, ok := g.Food(); ok {
		cx := r.offsetX + int32(food.X)*r.cellSize + r.cellSize/2
		cy := r.offsetY + int32(food.Y)*r.cellSize + r.cellSize/2
		rl.DrawCircle(cx, cy, float32(r.cellSize)*0.35, theme.Food)
	}

	// Snake
	for i, seg := range g.Body() {
		color := theme.SnakeBody
		if i == 0 {
			color = theme.SnakeHead
		}
		rl.DrawRectangle(
			r.offsetX+int32(seg.X)*r.cellSize+1,
			r.offsetY+int32(seg.Y)*r.cellSize+1,
			r.cellSize-2, r.cellSize-2, color)
	}

	r.drawHUD(g, theme, highScore)

	switch {
	case g.Won():
		r.drawOverlay(theme, "YOU WIN!", fmt.Sprintf("Score: %d", g.Score()))
	case !g.Alive():
		r.drawOverlay(theme, "GAME OVER", "Press R to restart")
	case paused:
		r.drawOverlay(theme, "PAUSED", "Press P to continue")
	}

	rl.EndDrawing()
}

// drawHUD draws the title bar and score line above the playfield.
func (r *Renderer) drawHUD(g *game.Game, theme Theme, highScore int) {
	screenW := int32(rl.GetScreenWidth())

	title := "SNAKE"
	titleW := rl.MeasureText(title, titleFontSize)
	rl.DrawText(title, (screenW-titleW)/2, 24, titleFontSize, theme.TextPrimary)

	hud := fmt.Sprintf("Score: %d    High Score: %d", g.Score(), highScore)
	rl.DrawText(hud, r.offsetX, playfieldTop-36, hudFontSize, theme.TextPrimary)

	hint := "Arrows/WASD to move  P pause  R restart  T theme"
	hintW := rl.MeasureText(hint, 18)
	rl.DrawText(hint, screenW-hintW-borderPadding, playfieldTop-30, 18, theme.TextSecondary)
}

// drawOverlay dims the playfield and centers a two-line message.
func (r *Renderer) drawOverlay(theme Theme, line1, line2 string) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.fieldW, r.fieldH, theme.Overlay)

	w1 := rl.MeasureText(line1, titleFontSize)
	w2 := rl.MeasureText(line2, hudFontSize)
	centerX := r.offsetX + r.fieldW/2
	centerY := r.offsetY + r.fieldH/2

	rl.DrawText(line1, centerX-w1/2, centerY-48, titleFontSize, theme.TextPrimary)
	rl.DrawText(line2, centerX-w2/2, centerY+16, hudFontSize, theme.TextSecondary)
}
