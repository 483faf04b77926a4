package tunnel

import (
	"math/rand"

	engine "github.com/etwoo/tunnel-go/internal/tunnel"
)

// randomShape feeds the corridor engine: the player starts in the middle
// of the screen and each new row narrows from a uniformly random side.
type randomShape struct {
	rng *rand.Rand
}

func newRandomShape(rng *rand.Rand) *randomShape {
	return &randomShape{rng: rng}
}

func (s *randomShape) PlayerStart(width uint16) uint16 {
	return width / 2
}

func (s *randomShape) NextMove() engine.Move {
	if s.rng.Intn(2) == 0 {
		return engine.NarrowFromLeft
	}
	return engine.NarrowFromRight
}
