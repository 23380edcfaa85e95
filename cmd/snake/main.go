// snake is the classic Snake game for the terminal and the desktop.
//
// Usage:
//
//	snake play            - Play in the terminal
//	snake gui             - Play in a window
//	snake scores          - Show high scores
//	snake serve           - Start SSH server for remote terminal play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game",
	Long: `Snake is the classic arcade game: steer the snake, eat food to grow,
and avoid the walls and your own tail.

Two frontends share the same game core:
  play     - Character-cell rendering in the terminal
  gui      - Windowed 2D rendering with color themes

Other commands:
  scores   - View high scores
  serve    - Start SSH server for remote terminal play

Examples:
  snake play
  snake play --speed fast
  snake gui --theme "Ocean Blue"
  snake serve --ssh :2222
  snake scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
