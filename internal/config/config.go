// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris engine.
package config

import "time"

// TetrisConfig contains all tunable parameters of a session.
type TetrisConfig struct {
	Timer        TimerConfig  `yaml:"timer"`
	Difficulties []Difficulty `yaml:"difficulties"`
}

// TimerConfig defines countdown behavior for timed difficulties.
type TimerConfig struct {
	ClearBonusSeconds int `yaml:"clear_bonus_seconds"` // Seconds added per cleared row
}

// Difficulty is a named preset selected once at game start.
type Difficulty struct {
	Key              string `yaml:"key"`
	Label            string `yaml:"label"`
	DropIntervalMs   int    `yaml:"drop_interval_ms"`
	TimeLimitSeconds int    `yaml:"time_limit_seconds"` // 0 = unlimited
	ScorePerLine     int    `yaml:"score_per_line"`
	Color            string `yaml:"color"` // Hex color used for the player badge
}

// DropInterval returns the gravity interval as a duration.
func (d Difficulty) DropInterval() time.Duration {
	return time.Duration(d.DropIntervalMs) * time.Millisecond
}

// Timed reports whether the preset has a countdown.
func (d Difficulty) Timed() bool {
	return d.TimeLimitSeconds > 0
}

// Title returns the display label, falling back to the key.
func (d Difficulty) Title() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Key
}
