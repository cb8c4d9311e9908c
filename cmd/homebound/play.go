package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-homebound/internal/core"
	"github.com/vovakirdan/tui-homebound/internal/games/homebound"
	"github.com/vovakirdan/tui-homebound/internal/platform/tui"
	"github.com/vovakirdan/tui-homebound/internal/registry"
	"github.com/vovakirdan/tui-homebound/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Mouse click - Set a waypoint; the avatar heads there
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 2
  hard   - Start at level 5
  fixed  - No level progression, stays at the starting level

Examples:
  homebound play
  homebound play --difficulty hard
  homebound play --level 3
  homebound play --config ./my-homebound.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides the difficulty preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
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

	// Set config path and difficulty before game creation
	homebound.SetConfigPath(flagConfig)
	homebound.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		homebound.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(defaultGameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

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
