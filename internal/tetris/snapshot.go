package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// Mutating it never affects the engine.
type Snapshot struct {
	Grid          [][]int
	Active        ActivePiece
	Next          Shape
	Mode          Mode
	Paused        bool
	Score         int
	Lines         int
	Timed         bool
	TimeRemaining int
	Player        string
	Difficulty    config.Difficulty
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:          e.grid.Cells(),
		Active:        e.active.Clone(),
		Next:          e.spawner.Peek(),
		Mode:          e.mode,
		Paused:        e.paused,
		Score:         e.score,
		Lines:         e.lines,
		Timed:         e.preset.Timed(),
		TimeRemaining: e.timeLeft,
		Player:        e.player,
		Difficulty:    e.preset,
	}
}

// TimeText formats the countdown as m:ss, or ∞ for untimed sessions.
func (s Snapshot) TimeText() string {
	if !s.Timed {
		return "∞"
	}
	return FormatSeconds(s.TimeRemaining)
}

// FormatSeconds renders a non-negative second count as m:ss.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
