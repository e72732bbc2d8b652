// Package tui is the Bubble Tea host for the falling game.
// It drives the session at a fixed update rate, turns terminal key presses
// into press/release events and rasterises snapshots into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at ups per second.
func tickCmd(ups int) tea.Cmd {
	interval := time.Second / time.Duration(ups)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
