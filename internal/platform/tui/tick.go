// Package tui provides the Bubble Tea integration for the tunnel platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts ticks-per-second to a duration, clamping the rate
// to at least one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}
