// geoshooter is a vertically scrolling arcade shooter played in the terminal.
//
// Usage:
//
//	geoshooter play              - Play locally
//	geoshooter serve             - Start SSH server for remote play
//	geoshooter scores            - Show high scores
//	geoshooter blueprints        - List entity blueprints
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.geoshooter/runs.db)
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
	Use:   "geoshooter",
	Short: "Geometry Shooter - a scrolling arcade shooter in your terminal",
	Long: `Geometry Shooter is a terminal arcade game: pilot a ship through
an endless scrolling field of geometric enemies.

Available commands:
  play        - Play the game locally
  serve       - Start SSH server for remote play
  scores      - View high scores and run statistics
  blueprints  - List the entity blueprints

Examples:
  geoshooter play
  geoshooter play --difficulty hard
  geoshooter serve --ssh :2222
  geoshooter scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geoshooter/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(blueprintsCmd)
}
