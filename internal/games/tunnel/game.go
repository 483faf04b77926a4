// Package tunnel wraps the corridor engine in the platform's Game
// interface: a keyboard mode and a self-playing autopilot mode over the
// same core.
package tunnel

import (
	"fmt"
	"math/rand"

	"github.com/etwoo/tunnel-go/internal/config"
	"github.com/etwoo/tunnel-go/internal/core"
	"github.com/etwoo/tunnel-go/internal/registry"
	engine "github.com/etwoo/tunnel-go/internal/tunnel"
)

// Mode represents the game mode.
type Mode string

const (
	ModeKeyboard  Mode = "keyboard"
	ModeAutopilot Mode = "autopilot"
)

// Visual characters for rendering
const (
	PlayerChar = 'v'
	WallChar   = 'O'
	FloorChar  = ' '
)

// Minimum playable window: 3 columns give the seed row a passable column,
// 4 rows give the lookahead buffer its first row.
const (
	minPlayableW = 3
	minPlayableH = 4
)

// Game implements the tunnel corridor game.
type Game struct {
	mode Mode
	cfg  core.RuntimeConfig
	rng  *rand.Rand

	tun   *engine.Tunnel[uint16]
	shape *randomShape

	tick           uint64
	score          int
	stepEveryTicks int
	stepTicker     int
	targetScore    int // autopilot stop line; 0 in keyboard mode

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new keyboard-controlled tunnel game.
func New() *Game {
	return &Game{mode: ModeKeyboard}
}

// NewDemo creates a new self-playing tunnel game.
func NewDemo() *Game {
	return &Game{mode: ModeAutopilot}
}

func init() {
	registry.Register("tunnel", func() registry.Game {
		return New()
	})
	registry.Register("tunnel_demo", func() registry.Game {
		return NewDemo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAutopilot {
		return "tunnel_demo"
	}
	return "tunnel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAutopilot {
		return "Tunnel (Autopilot)"
	}
	return "Tunnel"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.stepTicker = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	fileCfg, err := config.LoadTunnel(configPath)
	if err != nil {
		fileCfg = config.DefaultTunnelConfig()
	}
	g.stepEveryTicks = fileCfg.Pacing.StepEveryTicks
	g.targetScore = 0
	if g.mode == ModeAutopilot {
		g.stepEveryTicks = fileCfg.Demo.StepEveryTicks
		g.targetScore = fileCfg.Demo.TargetScore
	}
	if g.stepEveryTicks < 1 {
		g.stepEveryTicks = 1
	}

	g.tooSmall = cfg.ScreenW < minPlayableW || cfg.ScreenH < minPlayableH

	// The corridor fills the whole screen; an unplayably small screen still
	// gets a (possibly empty) corridor so rendering stays uniform.
	g.shape = newRandomShape(g.rng)
	g.tun = engine.New(g.shape, clampU16(cfg.ScreenH), clampU16(cfg.ScreenW))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.GameState {
	g.tick++

	// Handle restart after a finished run
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		next := g.cfg
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return g.State()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return g.State()
	}

	// Keyboard steering applies every tick; walls kill on contact.
	if g.mode == ModeKeyboard {
		if in.Has(core.ActionLeft) {
			g.tun.MovePlayerLeft()
		}
		if in.Has(core.ActionRight) {
			g.tun.MovePlayerRight()
		}
		if g.tun.IsCollision() {
			g.gameOver = true
			return g.State()
		}
	}

	// Scroll the corridor on its configured cadence.
	g.stepTicker++
	if g.stepTicker >= g.stepEveryTicks {
		g.stepTicker = 0
		g.advance()
	}

	return g.State()
}

// advance runs one corridor scroll: autopilot steering first, then the
// scroll, then the survival check. Each survived row scores one point.
func (g *Game) advance() {
	if g.mode == ModeAutopilot {
		g.autopilot()
	}
	g.tun.Step(g.shape)
	if g.tun.IsCollision() {
		g.gameOver = true
		return
	}
	g.score++
	if g.targetScore > 0 && g.score >= g.targetScore {
		g.won = true
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.drawCenteredMessage(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", minPlayableW, minPlayableH))
		return
	}

	// Corridor cells: row 0 is the player's row at the top of the screen.
	// Floor cells stay blank.
	for cell := range g.tun.Cells() {
		x, y := int(cell.Col), int(cell.Row)
		switch cell.Kind {
		case engine.Player:
			dst.SetCell(x, y, PlayerChar, core.ColorGreen)
		case engine.Wall:
			dst.SetCell(x, y, WallChar, core.ColorGray)
		}
	}

	// Score HUD over the bottom row
	dst.DrawText(0, dst.Height()-1, fmt.Sprintf(" Score: %d ", g.score))

	switch {
	case g.won:
		g.drawCenteredMessage(dst, "Run Complete", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.gameOver:
		g.drawCenteredMessage(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "Paused", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// clampU16 converts a screen dimension to corridor units.
func clampU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > int(^uint16(0)) {
		return ^uint16(0)
	}
	return uint16(v)
}
