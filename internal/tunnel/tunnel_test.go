package tunnel

import "testing"

// script is a deterministic Generator: a fixed start column plus a canned
// move sequence that cycles when exhausted.
type script[I Index] struct {
	start I
	moves []Move
	at    int
}

func (s *script[I]) PlayerStart(width I) I { return s.start }

func (s *script[I]) NextMove() Move {
	if len(s.moves) == 0 {
		return NarrowFromLeft
	}
	m := s.moves[s.at%len(s.moves)]
	s.at++
	return m
}

func hasCells[I Index](t *Tunnel[I]) bool {
	for range t.Cells() {
		return true
	}
	return false
}

func TestFrontRowSpanAfterConstruction(t *testing.T) {
	// The front row is the seed row: walls exactly on the edge columns,
	// passable span exactly [1, w-2]. Walk the player across every column
	// and check the collision verdict at each.
	for _, width := range []uint16{3, 4, 5, 9, 80} {
		gen := &script[uint16]{start: 0}
		tun := New(gen, 10, width)
		if row, ok := tun.FrontRow(); !ok || row.LeftWall != 0 || row.Gap != width-2 {
			t.Fatalf("width %d: front row = %+v (ok=%v), want {LeftWall:0 Gap:%d}", width, row, ok, width-2)
		}
		for col := uint16(0); col <= width; col++ {
			wantHit := col == 0 || col >= width-1
			if got := tun.IsCollision(); got != wantHit {
				t.Errorf("width %d col %d: IsCollision = %v, want %v", width, col, got, wantHit)
			}
			tun.MovePlayerRight()
		}
	}
}

func TestGapNeverBelowOne(t *testing.T) {
	scripts := map[string][]Move{
		"all left":    {NarrowFromLeft},
		"all right":   {NarrowFromRight},
		"alternating": {NarrowFromLeft, NarrowFromRight},
		"skewed":      {NarrowFromRight, NarrowFromRight, NarrowFromLeft},
	}
	for name, moves := range scripts {
		t.Run(name, func(t *testing.T) {
			for _, width := range []uint16{3, 5, 9} {
				gen := &script[uint16]{start: 1, moves: moves}
				tun := New(gen, 4, width)
				for i := 0; i < 50; i++ {
					tun.Advance(gen)
				}
				for i := 0; i < tun.rows.len(); i++ {
					if row := tun.rows.at(i); row.Gap < 1 {
						t.Fatalf("width %d row %d: gap = %d, want >= 1", width, i, row.Gap)
					}
				}
			}
		})
	}
}

func TestNarrowFromRightDrift(t *testing.T) {
	// NarrowFromRight must stay a LeftWall no-op while the gap is above 1,
	// and once the gap reaches 1 it slides the corridor left without ever
	// widening the gap. NarrowFromLeft stops at width-3.
	L, R := NarrowFromLeft, NarrowFromRight
	moves := []Move{R, R, R, L, L, L, L, R, R}
	wants := []Row[uint16]{
		{LeftWall: 0, Gap: 3},
		{LeftWall: 0, Gap: 2},
		{LeftWall: 0, Gap: 1},
		{LeftWall: 1, Gap: 1},
		{LeftWall: 2, Gap: 1},
		{LeftWall: 3, Gap: 1},
		{LeftWall: 3, Gap: 1},
		{LeftWall: 2, Gap: 1},
		{LeftWall: 1, Gap: 1},
	}
	gen := &script[uint16]{start: 2, moves: moves}
	tun := New(gen, 4, 6) // height 4 buffers only the seed row {0, 4}
	for i, want := range wants {
		tun.Advance(gen)
		if got := tun.rows.back(); got != want {
			t.Fatalf("after advance %d (%v): back row = %+v, want %+v", i+1, moves[i], got, want)
		}
	}
}

func TestConstructionScenario(t *testing.T) {
	// width 5, height 5: two pre-fill advances (seed plus one generated
	// row), player starting at width-2 = 3.
	gen := &script[uint16]{
		start: 3,
		moves: []Move{NarrowFromLeft, NarrowFromLeft, NarrowFromRight, NarrowFromLeft},
	}
	tun := New(gen, 5, 5)

	if got := tun.PlayerColumn(); got != 3 {
		t.Fatalf("player column = %d, want 3", got)
	}
	if got := tun.Depth(); got != 2 {
		t.Fatalf("depth = %d, want 2", got)
	}
	if row, ok := tun.FrontRow(); !ok || (row != Row[uint16]{LeftWall: 0, Gap: 3}) {
		t.Fatalf("front row = %+v (ok=%v), want {LeftWall:0 Gap:3}", row, ok)
	}
	if tun.IsCollision() {
		t.Fatal("collision on the seed row with player at 3")
	}

	wantFront := []CellKind{Wall, Floor, Floor, Player, Wall}
	var gotFront []CellKind
	for cell := range tun.Cells() {
		if cell.Row != 0 {
			break
		}
		gotFront = append(gotFront, cell.Kind)
	}
	if len(gotFront) != len(wantFront) {
		t.Fatalf("front row has %d cells, want %d", len(gotFront), len(wantFront))
	}
	for i, want := range wantFront {
		if gotFront[i] != want {
			t.Errorf("front row col %d: kind = %v, want %v", i, gotFront[i], want)
		}
	}

	// One scroll on top of the scenario: the generated row {1, 2} reaches
	// the front and the player at column 3 sits on its last passable column.
	tun.Step(gen)
	if row, ok := tun.FrontRow(); !ok || (row != Row[uint16]{LeftWall: 1, Gap: 2}) {
		t.Fatalf("front row after step = %+v (ok=%v), want {LeftWall:1 Gap:2}", row, ok)
	}
	if tun.IsCollision() {
		t.Error("column 3 is the last passable column of {1, 2}, not a collision")
	}
}

func TestStepScrolls(t *testing.T) {
	gen := &script[uint16]{start: 3}
	tun := New(gen, 5, 6)
	if got := tun.Depth(); got != 2 {
		t.Fatalf("depth after construction = %d, want 2", got)
	}
	wantFronts := []Row[uint16]{
		{LeftWall: 1, Gap: 3},
		{LeftWall: 2, Gap: 2},
		{LeftWall: 3, Gap: 1},
	}
	for i, want := range wantFronts {
		tun.Step(gen)
		if got := tun.Depth(); got != 2 {
			t.Fatalf("depth after step %d = %d, want 2", i+1, got)
		}
		if row, ok := tun.FrontRow(); !ok || row != want {
			t.Fatalf("front row after step %d = %+v (ok=%v), want %+v", i+1, row, ok, want)
		}
	}
}

func TestPlayerMoveSaturation(t *testing.T) {
	t.Run("left stops at zero", func(t *testing.T) {
		gen := &script[uint8]{start: 0}
		tun := New(gen, 10, 10)
		for i := 0; i < 3; i++ {
			tun.MovePlayerLeft()
			if got := tun.PlayerColumn(); got != 0 {
				t.Fatalf("player column = %d, want 0", got)
			}
		}
	})
	t.Run("right stops at max", func(t *testing.T) {
		gen := &script[uint8]{start: 255}
		tun := New(gen, 10, 10)
		for i := 0; i < 3; i++ {
			tun.MovePlayerRight()
			if got := tun.PlayerColumn(); got != 255 {
				t.Fatalf("player column = %d, want 255", got)
			}
		}
	})
}

func TestShortConstructionStaysEmpty(t *testing.T) {
	for _, height := range []uint16{0, 1, 2} {
		gen := &script[uint16]{start: 3}
		tun := New(gen, height, 7)
		if got := tun.Depth(); got != 0 {
			t.Fatalf("height %d: depth = %d, want 0", height, got)
		}
		if tun.IsCollision() {
			t.Errorf("height %d: collision reported with no rows buffered", height)
		}
		if hasCells(tun) {
			t.Errorf("height %d: cells enumerated with no rows buffered", height)
		}
		// Step seeds one row and immediately scrolls it away.
		tun.Step(gen)
		if got := tun.Depth(); got != 0 {
			t.Errorf("height %d: depth after step = %d, want 0", height, got)
		}
		if tun.IsCollision() {
			t.Errorf("height %d: collision reported after step on empty corridor", height)
		}
	}
}

func TestZeroWidthCollides(t *testing.T) {
	gen := &script[uint16]{start: 0}
	tun := New(gen, 5, 0)
	if got := tun.Depth(); got != 2 {
		t.Fatalf("depth = %d, want 2", got)
	}
	if !tun.IsCollision() {
		t.Error("zero-width corridor is solid wall, want collision")
	}
	tun.Step(gen)
	if !tun.IsCollision() {
		t.Error("zero-width corridor after step, want collision")
	}
	if hasCells(tun) {
		t.Error("zero-width corridor enumerated cells, want none")
	}
}

func TestOverflowDegradesToEmpty(t *testing.T) {
	// uint8 tops out at 255 buffered rows. Construction at height 255
	// buffers 252; pushing the depth past 255 with bare advances must turn
	// enumeration empty instead of wrapping row indices.
	gen := &script[uint8]{start: 5, moves: []Move{NarrowFromLeft, NarrowFromRight}}
	tun := New(gen, 255, 255)
	if got := tun.Depth(); got != 252 {
		t.Fatalf("depth after construction = %d, want 252", got)
	}
	if !hasCells(tun) {
		t.Fatal("expected cells right after construction")
	}
	for i := 0; i < 3; i++ {
		tun.Advance(gen)
	}
	if got := tun.Depth(); got != 255 {
		t.Fatalf("depth = %d, want 255", got)
	}
	if !hasCells(tun) {
		t.Fatal("expected cells at exactly 255 buffered rows")
	}
	tun.Advance(gen)
	if got := tun.Depth(); got != 256 {
		t.Fatalf("depth = %d, want 256", got)
	}
	if hasCells(tun) {
		t.Error("256 rows exceed uint8, want empty enumeration")
	}
}
