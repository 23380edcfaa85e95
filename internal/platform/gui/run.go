package gui

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

// GameID identifies graphical snake scores in the database, keeping the
// windowed and terminal leaderboards separate.
const GameID = "snake_gui"

const targetFPS = 60

// Run opens the game window and drives the loop until the player closes it.
// The same game core the terminal variant uses moves once per move interval;
// frames in between only redraw.
func Run(g *game.Game, gameCfg config.SnakeConfig, store *storage.Store, highFile *storage.HighScoreFile, themeName string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-gui",
	})

	themes := Themes()
	themeIndex := ThemeIndexByName(themeName)

	highScore := 0
	if highFile != nil {
		highScore = highFile.Load()
	}
	if store != nil {
		if dbHigh, err := store.HighScore(GameID); err == nil && dbHigh > highScore {
			highScore = dbHigh
		}
	}

	rl.InitWindow(windowWidth, windowHeight, "Snake")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer(g.Width(), g.Height())
	moveInterval := time.Duration(gameCfg.Speed.MoveEveryTicks) * time.Second / targetFPS
	lastMove := time.Now()

	paused := false
	scoreSaved := false
	frame := core.NewInputFrame()

	for !rl.WindowShouldClose() {
		frame.Clear()
		pollInput(&frame)

		switch {
		case frame.Has(core.ActionUp):
			g.SetDirection(game.Up)
		case frame.Has(core.ActionDown):
			g.SetDirection(game.Down)
		case frame.Has(core.ActionLeft):
			g.SetDirection(game.Left)
		case frame.Has(core.ActionRight):
			g.SetDirection(game.Right)
		}

		if frame.Has(core.ActionPause) && g.Alive() {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyT) {
			themeIndex = (themeIndex + 1) % len(themes)
		}
		if frame.Has(core.ActionRestart) && !g.Alive() {
			g.Reset(time.Now().UnixNano())
			paused = false
			scoreSaved = false
			lastMove = time.Now()
		}

		// Simulation
		if !paused && g.Alive() && time.Since(lastMove) >= moveInterval {
			lastMove = time.Now()
			g.Tick()
		}

		if !g.Alive() && !scoreSaved {
			scoreSaved = true
			score := g.Score()
			if score > 0 {
				if store != nil {
					if _, err := store.SaveScore(GameID, score); err != nil {
						logger.Warn("could not save score", "error", err)
					}
				}
				if score > highScore {
					highScore = score
					if highFile != nil {
						//nolint:errcheck // Best-effort save, game continues regardless
						highFile.Save(score)
					}
				}
			}
		}

		renderer.Draw(g, themes[themeIndex], highScore, paused)
	}

	return nil
}

// pollInput reads the keys pressed since the last frame into an input frame,
// so the loop above acts on the same action vocabulary the terminal uses.
func pollInput(frame *core.InputFrame) {
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW) {
		frame.Set(core.ActionUp)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS) {
		frame.Set(core.ActionDown)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD) {
		frame.Set(core.ActionRight)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		frame.Set(core.ActionPause)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		frame.Set(core.ActionRestart)
	}
}
