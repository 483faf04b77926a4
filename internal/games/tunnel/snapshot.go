package tunnel

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateComplete    GameStateType = "run_complete"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	PlayerCol uint16
	Width     uint16
	Height    uint16
	Depth     int
	FrontLeft uint16
	FrontGap  uint16
	State     GameStateType
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateComplete
	case g.gameOver:
		state = StateGameOver
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		PlayerCol: g.tun.PlayerColumn(),
		Width:     g.tun.Width(),
		Height:    clampU16(g.cfg.ScreenH),
		Depth:     g.tun.Depth(),
		State:     state,
	}
	if front, ok := g.tun.FrontRow(); ok {
		snap.FrontLeft = front.LeftWall
		snap.FrontGap = front.Gap
	}
	return snap
}
