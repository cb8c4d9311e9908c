package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-homebound/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'homebound play' to start a run.")
}
