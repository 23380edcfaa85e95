package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/platform/gui"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

var (
	flagGUIConfig    string
	flagGUISpeed     string
	flagGUITheme     string
	flagGUIHighScore string
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play snake in a window",
	Long: `Play snake in a resizable window with color themes.

Controls:
  Arrows/WASD - Change direction
  P           - Pause
  R           - Restart (after game over)
  T           - Cycle color theme
  Esc         - Quit

Themes: "Classic Green", "Ocean Blue", "Cyberpunk"

Examples:
  snake gui
  snake gui --theme "Ocean Blue"
  snake gui --speed fast`,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagGUIConfig, "config", "", "Path to custom game config YAML")
	guiCmd.Flags().StringVar(&flagGUISpeed, "speed", "", "Speed preset: slow, normal, fast")
	guiCmd.Flags().StringVar(&flagGUITheme, "theme", "", "Color theme name")
	guiCmd.Flags().StringVar(&flagGUIHighScore, "highscore", "~/.snake-arcade/highscore.dat", "Path to the high score file")
}

func runGUI(cmd *cobra.Command, args []string) error {
	gameCfg, err := config.LoadSnake(flagGUIConfig)
	if err != nil {
		return err
	}
	config.ApplySpeedPreset(&gameCfg, config.SpeedPreset(flagGUISpeed))

	g, err := game.New(game.Config{
		Width:         gameCfg.Board.Width,
		Height:        gameCfg.Board.Height,
		InitialLength: gameCfg.Board.InitialLength,
		Seed:          flagSeed,
	})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	highFile := storage.NewHighScoreFile(flagGUIHighScore)

	return gui.Run(g, gameCfg, store, highFile, flagGUITheme)
}
