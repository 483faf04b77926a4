package tunnel

import (
	engine "github.com/etwoo/tunnel-go/internal/tunnel"
)

// autopilot steers one column toward the middle of the floor span on the
// row about to scroll under the player. It reads the same cell stream a
// renderer would, in a single pass over the first two rows.
func (g *Game) autopilot() {
	player := g.tun.PlayerColumn()
	safeLeft := ^uint16(0)
	safeRight := uint16(0)

	for cell := range g.tun.Cells() {
		if cell.Row > 1 {
			break
		}
		switch cell.Kind {
		case engine.Player:
			player = cell.Col
		case engine.Floor:
			if cell.Row == 1 {
				safeLeft = min(safeLeft, cell.Col)
				safeRight = max(safeRight, cell.Col)
			}
		}
	}

	goal := safeLeft
	if safeRight > safeLeft {
		goal = safeLeft + (safeRight-safeLeft)/2
	}

	switch {
	case player > goal:
		g.tun.MovePlayerLeft()
	case player < goal:
		g.tun.MovePlayerRight()
	}
}
