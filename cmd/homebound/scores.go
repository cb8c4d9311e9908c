package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-homebound/internal/platform/tui"
	"github.com/vovakirdan/tui-homebound/internal/registry"
	"github.com/vovakirdan/tui-homebound/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs, ranked by levels cleared.

Examples:
  homebound scores
  homebound scores -i    # Interactive scrollable view`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	game, err := registry.Create(defaultGameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

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
		if err := tui.RunScoreboard(store, defaultGameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(defaultGameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'homebound play' to set the first best run!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Levels", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Levels, dateStr)
	}

	fmt.Println()
	best, err := store.BestRun(defaultGameID)
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
