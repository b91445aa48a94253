// Package tui provides the Bubble Tea adapter for the tetris engine.
// It owns the terminal loop, the lobby screen, input mapping and the two
// timers that drive the simulation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long the board stays tinted after a line clear.
const flashDuration = 150 * time.Millisecond

// FrameMsg is sent by the frame driver. Gen identifies the chain that
// produced it; frames from an abandoned chain are dropped.
type FrameMsg struct {
	Gen int
	At  time.Time
}

// SecondMsg is sent once per second by the countdown driver.
type SecondMsg time.Time

// flashDoneMsg ends the line-clear flash with the given sequence number.
type flashDoneMsg int

// frameCmd returns a command that delivers one frame at the given rate.
func frameCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}

// secondCmd returns a command that delivers the next countdown second.
func secondCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg(t)
	})
}

func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg(seq)
	})
}
