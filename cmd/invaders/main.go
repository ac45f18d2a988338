// invaders is a terminal rendition of the classic alien-shooter arcade
// game: move the ship, shoot down the descending fleet, survive as many
// levels as you can.
//
// Usage:
//
//	invaders play            - Play in the current terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the best recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/runs.db)
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
	Use:   "invaders",
	Short: "Invaders - the classic alien shooter in your terminal",
	Long: `Invaders is a terminal-based rendition of the classic arcade alien
shooter. Pilot the ship along the bottom of the screen, shoot down the
descending fleet, and chase the high score across ever-faster levels.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
