// tunnel is a terminal corridor game: steer the marker through an endless
// scrolling tunnel that keeps narrowing.
//
// Usage:
//
//	tunnel play              - Play in the current terminal
//	tunnel play --demo       - Watch the autopilot play
//	tunnel menu              - Start the mode picker menu
//	tunnel serve             - Start SSH server for remote play
//	tunnel scores [game]     - Show high scores
//	tunnel list              - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.tunnel/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/etwoo/tunnel-go/internal/games/tunnel"
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
	Use:   "tunnel",
	Short: "Tunnel - dodge the walls of a scrolling corridor",
	Long: `Tunnel is a terminal game: an endlessly scrolling corridor narrows
around your marker, and one touch of the wall ends the run.

Available commands:
  play     - Play in the current terminal (--demo for autopilot)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered modes

Examples:
  tunnel play
  tunnel play --demo
  tunnel menu
  tunnel serve --ssh :2222
  tunnel scores tunnel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tunnel/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
