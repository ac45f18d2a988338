package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkovalev/tui-invaders/internal/config"
	"github.com/pkovalev/tui-invaders/internal/core"
	"github.com/pkovalev/tui-invaders/internal/games/invaders"
	"github.com/pkovalev/tui-invaders/internal/platform/tui"
	"github.com/pkovalev/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/Left       - Move left
  D/Right      - Move right
  Space/W/Up   - Fire
  P/Esc        - Pause
  R/Enter      - Start / restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Extra life, slower fleet, bigger bullet cap
  normal - Standard rules
  hard   - Fewer lives, faster fleet, smaller bullet cap

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Probe the terminal for the playfield size
	width, height := 80, 24 // Defaults
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

	var opts []invaders.Option
	if flagConfig != "" {
		opts = append(opts, invaders.WithConfigPath(flagConfig))
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, invaders.WithDifficulty(preset))
	}

	game := invaders.New(opts...)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
