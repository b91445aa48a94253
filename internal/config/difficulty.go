package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset names one of the built-in difficulty keys.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Lookup returns the preset with the given key.
func (c TetrisConfig) Lookup(key string) (Difficulty, bool) {
	for _, d := range c.Difficulties {
		if d.Key == key {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Keys returns preset keys in declaration order.
func (c TetrisConfig) Keys() []string {
	keys := make([]string, 0, len(c.Difficulties))
	for _, d := range c.Difficulties {
		keys = append(keys, d.Key)
	}
	return keys
}

// Validate checks that the presets are usable by the engine.
func (c TetrisConfig) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties defined", ErrInvalidConfig)
	}
	if c.Timer.ClearBonusSeconds < 0 {
		return fmt.Errorf("%w: clear_bonus_seconds must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for i, d := range c.Difficulties {
		switch {
		case d.Key == "":
			return fmt.Errorf("%w: difficulty #%d has no key", ErrInvalidConfig, i+1)
		case seen[d.Key]:
			return fmt.Errorf("%w: duplicate difficulty %q", ErrInvalidConfig, d.Key)
		case d.DropIntervalMs <= 0:
			return fmt.Errorf("%w: difficulty %q: drop_interval_ms must be positive", ErrInvalidConfig, d.Key)
		case d.TimeLimitSeconds < 0:
			return fmt.Errorf("%w: difficulty %q: time_limit_seconds must not be negative", ErrInvalidConfig, d.Key)
		case d.ScorePerLine <= 0:
			return fmt.Errorf("%w: difficulty %q: score_per_line must be positive", ErrInvalidConfig, d.Key)
		}
		seen[d.Key] = true
	}
	return nil
}
