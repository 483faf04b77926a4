package tunnel

// Move is one narrowing decision produced by a Generator for each newly
// generated row.
type Move uint8

const (
	// NarrowFromLeft walks the left wall one column inward.
	NarrowFromLeft Move = iota
	// NarrowFromRight nudges a minimal corridor one column back toward the
	// left edge.
	NarrowFromRight
)

func (m Move) String() string {
	switch m {
	case NarrowFromLeft:
		return "narrow_left"
	case NarrowFromRight:
		return "narrow_right"
	default:
		return "unknown"
	}
}

// Generator decides where the player starts and which side each new row
// narrows from. Implementations own all randomness; given a Generator the
// engine is fully deterministic.
type Generator[I Index] interface {
	// PlayerStart picks the player's initial column for a corridor of the
	// given width. The engine uses the value as-is, without clamping.
	PlayerStart(width I) I

	// NextMove is consumed exactly once per generated row. The seed row of
	// an empty corridor consumes none.
	NextMove() Move
}

// Row is one horizontal slice of corridor geometry. LeftWall is the
// rightmost column occupied by the left wall; Gap counts the passable
// columns immediately to its right. Columns in (LeftWall, LeftWall+Gap] are
// passable, every other column is wall.
type Row[I Index] struct {
	LeftWall I
	Gap      I
}

// seedRow is the geometry of the first row of an empty corridor: wall on
// each edge, everything between passable. At widths below 3 the gap
// saturates to zero and the row is solid wall.
func seedRow[I Index](width I) Row[I] {
	return Row[I]{LeftWall: 0, Gap: satSub(width, 2)}
}

// next derives the following row's geometry. The gap shrinks by one until it
// reaches 1, then the move decides: NarrowFromLeft walks the left wall
// inward as long as at least three columns remain before the right edge;
// NarrowFromRight slides a minimal corridor back toward the left edge. The
// NarrowFromRight branch deliberately leaves Gap untouched, so a wide
// corridor ignores it and a one-column corridor drifts left instead of
// widening in place.
func (r Row[I]) next(width I, move Move) Row[I] {
	if r.Gap > 1 {
		r.Gap--
	}
	switch move {
	case NarrowFromLeft:
		if satAdd(r.LeftWall, 3) < width {
			r.LeftWall = satAdd(r.LeftWall, 1)
		}
	case NarrowFromRight:
		if r.Gap == 1 {
			r.LeftWall = satSub(r.LeftWall, 1)
		}
	}
	return r
}
