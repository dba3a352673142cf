// Package tui provides the Bubble Tea integration: the frame tick that
// stands in for the vertical-blank signal, key-to-input mapping, and
// rendering of the character screen to a styled terminal string.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the once-per-display-refresh signal driving the engine.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
