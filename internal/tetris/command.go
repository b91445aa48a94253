package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Apply dispatches a player command. It reports whether the frame driver has
// to be re-armed (the session resumed or restarted). Only Restart can fail.
func (e *Engine) Apply(a core.Action) (bool, error) {
	switch a {
	case core.ActionLeft:
		e.MoveLeft()
	case core.ActionRight:
		e.MoveRight()
	case core.ActionDown:
		e.SoftDrop()
	case core.ActionRotate:
		e.Rotate()
	case core.ActionPause:
		return e.TogglePause(), nil
	case core.ActionRestart:
		if err := e.Restart(); err != nil {
			return false, err
		}
		return true, nil
	case core.ActionBack:
		e.ReturnToLobby()
	}
	return false, nil
}
