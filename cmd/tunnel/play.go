package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/etwoo/tunnel-go/internal/core"
	"github.com/etwoo/tunnel-go/internal/games/tunnel"
	"github.com/etwoo/tunnel-go/internal/platform/tui"
	"github.com/etwoo/tunnel-go/internal/registry"
	"github.com/etwoo/tunnel-go/internal/storage"
)

var (
	flagConfig string
	flagDemo   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the tunnel",
	Long: `Start a run in the current terminal. The corridor fills the window
and scrolls toward you; steer left and right to stay off the walls.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  P/Esc      - Pause
  R          - Restart (after a run ends)
  Q/Ctrl+C   - Quit

Examples:
  tunnel play
  tunnel play --demo
  tunnel play --seed 42
  tunnel play --config ./my-tunnel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tunnel"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagDemo {
		gameID = "tunnel_demo"
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tunnel list' to see available modes.")
		os.Exit(1)
	}

	// Set config path before creation
	tunnel.SetConfigPath(flagConfig)

	// Size the corridor to the terminal
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

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Final score to stdout once the alt screen is gone
	reportFinalScore(os.Stdout, game.State())
}

// reportFinalScore prints the score line for the finished run. A zero-score
// run still gets the line.
func reportFinalScore(w io.Writer, st core.GameState) {
	fmt.Fprintf(w, "Final score: %d\n", st.Score)
}
