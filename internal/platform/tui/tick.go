// Package tui provides the Bubble Tea integration for Rust Overload.
// It handles the terminal UI loop, input mapping, aging timer and run persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// AgingMsg triggers an aging pass. Gen identifies the run that scheduled it,
// so timers left over from a restarted run are ignored.
type AgingMsg struct {
	Gen int64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// agingCmd schedules the next aging pass.
func agingCmd(interval time.Duration, gen int64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return AgingMsg{Gen: gen}
	})
}
