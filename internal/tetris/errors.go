package tetris

import "errors"

// Input-validation failures reported by Start. The engine is unchanged when
// one of these is returned.
var (
	ErrEmptyName         = errors.New("tetris: player name is required")
	ErrNoDifficulty      = errors.New("tetris: difficulty must be selected")
	ErrUnknownDifficulty = errors.New("tetris: unknown difficulty")
	ErrNoSession         = errors.New("tetris: no previous session to restart")
)
