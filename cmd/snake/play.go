package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/platform/tui"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

var (
	flagConfig    string
	flagSpeed     string
	flagHighScore string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Play snake in the terminal.

Controls:
  Arrows/WASD - Change direction
  P/Esc       - Pause
  R/Enter     - Restart (after game over)
  Q/Ctrl+C    - Quit

Speed options:
  slow, normal, fast - Override the configured movement cadence

Examples:
  snake play
  snake play --speed fast
  snake play --config ./my-snake.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().StringVar(&flagHighScore, "highscore", "~/.snake-arcade/highscore.dat", "Path to the high score file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySpeedPreset(&gameCfg, config.SpeedPreset(flagSpeed))

	g, err := game.New(game.Config{
		Width:         gameCfg.Board.Width,
		Height:        gameCfg.Board.Height,
		InitialLength: gameCfg.Board.InitialLength,
		Seed:          flagSeed,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Play without score history
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	highFile := storage.NewHighScoreFile(flagHighScore)

	return tui.Run(g, gameCfg, store, highFile, cfg)
}
