package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkovalev/tui-invaders/internal/platform/tui"
	"github.com/pkovalev/tui-invaders/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 recorded runs.

With --interactive, opens a scrollable scoreboard instead of printing
a plain table.

Examples:
  invaders scores
  invaders scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Open the scrollable scoreboard view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60)
		fmt.Printf("  %-4d  %-10d  %-6d  %-6s  %s\n", i+1, r.Score, r.Level, timeStr, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
