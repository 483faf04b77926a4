package tunnel

import "iter"

// CellKind classifies one cell of the corridor.
type CellKind uint8

const (
	Floor CellKind = iota
	Wall
	Player
)

func (k CellKind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// Cell is one classified position. Row 0 is the corridor's front row, Col 0
// its left edge. Cells are derived on demand and never stored.
type Cell[I Index] struct {
	Row  I
	Col  I
	Kind CellKind
}

// Cells returns a row-major walk over every buffered cell: each row crossed
// with every column in [0, width). The sequence is computed lazily from the
// live geometry - no grid is materialized - and each range over it restarts
// from the front row. The player marker takes precedence over wall on its
// own cell. A buffered depth that I cannot represent yields the empty
// sequence, and so does width zero.
func (t *Tunnel[I]) Cells() iter.Seq[Cell[I]] {
	return func(yield func(Cell[I]) bool) {
		rowCount := fromCount[I](t.rows.len())
		for r := I(0); r < rowCount; r++ {
			row := t.rows.at(int(r))
			for c := I(0); c < t.width; c++ {
				if !yield(Cell[I]{Row: r, Col: c, Kind: t.kindAt(row, r, c)}) {
					return
				}
			}
		}
	}
}

// kindAt classifies one cell against its row's geometry.
func (t *Tunnel[I]) kindAt(row Row[I], r, c I) CellKind {
	if r == 0 && c == t.player {
		return Player
	}
	if c <= row.LeftWall || c > satAdd(row.LeftWall, row.Gap) {
		return Wall
	}
	return Floor
}
