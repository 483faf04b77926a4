// Package tunnel implements the corridor engine behind the tunnel games: an
// endless passage that narrows as it scrolls, a player column sliding along
// its front edge, and a lazy cell view for renderers and heuristics. The
// package is UI-agnostic and deterministic - all randomness comes in through
// a Generator, all arithmetic saturates, and no operation fails or panics on
// degenerate geometry.
package tunnel

// Tunnel is the corridor state machine. Rows live in a deque ordered from
// front (the row the player occupies) to back (the newest generated row);
// Step scrolls the corridor forward by one row. The zero value is not
// usable; construct with New.
type Tunnel[I Index] struct {
	rows   ringOf[Row[I]]
	player I
	width  I
}

// New builds a corridor of the given width and pre-fills its lookahead
// buffer with height-3 rows, so the corridor ahead of the player is already
// shaped before the first render. Heights of 3 or less start with an empty
// buffer, which enumerates nothing and never collides; whether that is
// playable is the caller's policy. The player starts wherever the generator
// says, unclamped.
func New[I Index](gen Generator[I], height, width I) *Tunnel[I] {
	t := &Tunnel[I]{width: width, player: gen.PlayerStart(width)}
	for n := satSub(height, 3); n > 0; n-- {
		t.Advance(gen)
	}
	return t
}

// Advance appends one row of geometry. An empty corridor is seeded with the
// full-width row without consulting the generator; otherwise the new row
// derives from the current back row and exactly one generator choice.
func (t *Tunnel[I]) Advance(gen Generator[I]) {
	if t.rows.len() == 0 {
		t.rows.pushBack(seedRow(t.width))
		return
	}
	t.rows.pushBack(t.rows.back().next(t.width, gen.NextMove()))
}

// Step scrolls the corridor: one new row enters at the back and the row the
// player just crossed falls off the front. Buffered depth is unchanged, so a
// corridor constructed empty stays empty under Step.
func (t *Tunnel[I]) Step(gen Generator[I]) {
	t.Advance(gen)
	t.rows.popFront()
}

// MovePlayerLeft shifts the player one column left, stopping at column zero.
func (t *Tunnel[I]) MovePlayerLeft() {
	t.player = satSub(t.player, 1)
}

// MovePlayerRight shifts the player one column right, stopping at the
// maximum of I.
func (t *Tunnel[I]) MovePlayerRight() {
	t.player = satAdd(t.player, 1)
}

// IsCollision reports whether the player overlaps wall on the front row.
// Strictly inside the passable span is safe; the boundary wall columns are
// not. An empty corridor has nothing to hit.
func (t *Tunnel[I]) IsCollision() bool {
	if t.rows.len() == 0 {
		return false
	}
	front := t.rows.front()
	return t.player <= front.LeftWall || t.player > satAdd(front.LeftWall, front.Gap)
}

// Width returns the corridor's fixed column count.
func (t *Tunnel[I]) Width() I { return t.width }

// PlayerColumn returns the player's current column.
func (t *Tunnel[I]) PlayerColumn() I { return t.player }

// Depth returns the number of buffered rows.
func (t *Tunnel[I]) Depth() int { return t.rows.len() }

// FrontRow returns the geometry under the player, if any row is buffered.
func (t *Tunnel[I]) FrontRow() (Row[I], bool) {
	if t.rows.len() == 0 {
		return Row[I]{}, false
	}
	return t.rows.front(), true
}
