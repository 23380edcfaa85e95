package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DarrenOsborne/snake-arcade/internal/platform/gui"
	"github.com/DarrenOsborne/snake-arcade/internal/platform/tui"
	"github.com/DarrenOsborne/snake-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Show the recorded high scores in an interactive table.

Examples:
  snake scores
  snake scores --db ./scores.db
  snake scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		for _, id := range []string{tui.GameID, gui.GameID} {
			if err := store.ClearScores(id); err != nil {
				return err
			}
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, width, height)
}
