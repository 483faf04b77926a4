package tunnel

import (
	"strings"
	"testing"

	"github.com/etwoo/tunnel-go/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testConfig())
	g2.Reset(testConfig())

	for tick := 0; tick < 300; tick++ {
		in := core.NewInputFrame()
		if tick%7 == 0 {
			in.Set(core.ActionLeft)
		}
		if tick%11 == 0 {
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("same seed diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestSnapshotReportsGeometry(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 33, ScreenH: 12, TickRate: 60, Seed: 5})

	snap := g.Snapshot()
	if snap.Width != 33 || snap.Height != 12 {
		t.Errorf("snapshot geometry = %dx%d, want 33x12", snap.Width, snap.Height)
	}
}

func TestScrollCadence(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	for i := 0; i < g.stepEveryTicks-1; i++ {
		g.Step(in)
	}
	if g.score != 0 {
		t.Fatalf("scored %d before the first scroll", g.score)
	}
	g.Step(in)
	if g.score != 1 {
		t.Fatalf("score after first scroll = %d, want 1", g.score)
	}

	for i := 0; i < 3*g.stepEveryTicks; i++ {
		g.Step(in)
	}
	if g.score != 4 {
		t.Fatalf("score after four scrolls = %d, want 4", g.score)
	}
}

func TestSteeringIntoWallEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)

	over := false
	for i := 0; i < 200; i++ {
		if g.Step(in).GameOver {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("holding left never hit the wall")
	}
}

func TestAutopilotCompletesRun(t *testing.T) {
	for _, seed := range []int64{1, 7, 1234} {
		g := NewDemo()
		cfg := testConfig()
		cfg.Seed = seed
		g.Reset(cfg)

		if g.targetScore <= 0 {
			t.Fatalf("demo mode needs a target score, got %d", g.targetScore)
		}

		limit := g.targetScore*g.stepEveryTicks + 1000
		in := core.NewInputFrame()
		for i := 0; i < limit && !g.State().GameOver; i++ {
			g.Step(in)
		}

		if !g.won {
			t.Fatalf("seed %d: autopilot died at score %d (want %d)", seed, g.score, g.targetScore)
		}
		if g.score != g.targetScore {
			t.Errorf("seed %d: final score = %d, want %d", seed, g.score, g.targetScore)
		}
		if got := g.Snapshot().State; got != StateComplete {
			t.Errorf("seed %d: state = %q, want %q", seed, got, StateComplete)
		}
	}
}

func TestPauseFreezesCorridor(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	before := g.Snapshot()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if st := g.Step(pause); !st.Paused {
		t.Fatal("pause action did not pause")
	}

	for i := 0; i < 50; i++ {
		g.Step(in)
	}
	after := g.Snapshot()
	if after.Score != before.Score || after.FrontLeft != before.FrontLeft || after.PlayerCol != before.PlayerCol {
		t.Errorf("corridor moved while paused:\n%+v\n%+v", before, after)
	}

	g.Step(pause)
	for i := 0; i < 2*g.stepEveryTicks; i++ {
		g.Step(in)
	}
	if g.score == before.Score {
		t.Error("corridor did not resume after unpause")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 2, ScreenH: 2, TickRate: 60, Seed: 1})

	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Fatalf("state = %q, want %q", got, StatePausedSmall)
	}

	in := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		g.Step(in)
	}
	if g.score != 0 {
		t.Errorf("score advanced on an unplayable window: %d", g.score)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 3, TickRate: 60, Seed: 1})
	s := core.NewScreen(80, 3)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Error("missing window size warning")
	}
}

func TestRenderCorridor(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 5, ScreenH: 5, TickRate: 60, Seed: 3})

	s := core.NewScreen(5, 5)
	g.Render(s)

	if got := s.Row(0); got != "O v O" {
		t.Errorf("front row = %q, want %q", got, "O v O")
	}
	if c := s.GetCell(2, 0); c.Color != core.ColorGreen {
		t.Errorf("player color = %v, want %v", c.Color, core.ColorGreen)
	}

	// The score HUD needs a screen wide enough to hold it
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 3})
	s = core.NewScreen(20, 6)
	g.Render(s)
	if !strings.Contains(s.Row(5), "Score: 0") {
		t.Errorf("bottom row = %q, missing score", s.Row(5))
	}
}

func TestRestartStartsFreshRun(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(in)
	}
	if !g.State().GameOver {
		t.Fatal("setup: run never ended")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	st := g.Step(restart)

	if st.GameOver {
		t.Fatal("restart left the game over")
	}
	if g.score != 0 {
		t.Errorf("score after restart = %d, want 0", g.score)
	}
	if g.tun.Depth() == 0 {
		t.Error("restart did not rebuild the corridor")
	}
}
