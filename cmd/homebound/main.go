// homebound is a terminal arcade game: click to set waypoints, guide the
// avatar to its home, and dodge the enemies pouring in from the edges.
//
// Usage:
//
//	homebound play            - Play the game
//	homebound list            - List available games
//	homebound scores          - Show best runs
//	homebound serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.homebound/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-homebound/internal/games/homebound"
)

const defaultGameID = "homebound"

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
	Use:   "homebound",
	Short: "Homebound - guide your avatar home through a field of enemies",
	Long: `Homebound is a terminal arcade game. Click anywhere on the field to
set a waypoint; your avatar heads there on its own. Reach the home square
to clear the level before a wandering, chasing, or fencing enemy touches
you. Every cleared level spawns a bigger wave.

Available commands:
  play     - Play the game
  list     - Show all available games
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  homebound play
  homebound play --difficulty hard
  homebound serve --ssh :2222
  homebound scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.homebound/scores.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
