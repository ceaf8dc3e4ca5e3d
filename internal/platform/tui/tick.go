// Package tui runs the simulation in a terminal with Bubble Tea: the fixed
// tick loop, keyboard mapping, the menu and scoreboard screens, and the
// SSH server that serves all of it over Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one tick interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
