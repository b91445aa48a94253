package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in presets.
// Must stay in sync with defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timer: TimerConfig{
			ClearBonusSeconds: 10,
		},
		Difficulties: []Difficulty{
			{
				Key:              string(DifficultyEasy),
				Label:            "Easy",
				DropIntervalMs:   1000,
				TimeLimitSeconds: 0,
				ScorePerLine:     100,
				Color:            "#2ecc71",
			},
			{
				Key:              string(DifficultyNormal),
				Label:            "Normal",
				DropIntervalMs:   600,
				TimeLimitSeconds: 180,
				ScorePerLine:     100,
				Color:            "#3498db",
			},
			{
				Key:              string(DifficultyHard),
				Label:            "Hard",
				DropIntervalMs:   300,
				TimeLimitSeconds: 120,
				ScorePerLine:     120,
				Color:            "#e67e22",
			},
			{
				Key:              string(DifficultyExtreme),
				Label:            "Extreme",
				DropIntervalMs:   160,
				TimeLimitSeconds: 60,
				ScorePerLine:     150,
				Color:            "#e74c3c",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
