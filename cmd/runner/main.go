// runner is a terminal lane-runner: dodge obstacles across three lanes,
// jump over what you can't dodge, and survive the speed ramp.
//
// Usage:
//
//	runner play [mode]       - Play a run (default mode: arcade)
//	runner list              - List available modes
//	runner scores <mode>     - Show high scores for a mode
//	runner board             - Interactive scoreboard
//	runner replay <run-id>   - Watch a stored run
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lanerunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game to register its modes
	_ "github.com/vovakirdan/lane-runner/internal/game"
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
	Use:   "runner",
	Short: "Lane Runner - a 3-lane endless runner in your terminal",
	Long: `Lane Runner is a terminal endless runner. Steer across three lanes,
jump over obstacles and survive as the world speeds up.

Available commands:
  play     - Play a run
  list     - Show all registered modes
  scores   - View high scores for a mode
  board    - Interactive scoreboard
  replay   - Watch a stored run
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play classic --difficulty hard
  runner scores arcade
  runner replay run-1724580000000000000
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
