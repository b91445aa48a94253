package core

// Action represents a semantic player command, abstracted from physical key presses.
// The engine consumes actions; the terminal adapter produces them.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - shift piece left
	ActionRight          // Right arrow, l - shift piece right
	ActionDown           // Down arrow, j - soft drop one row
	ActionRotate         // Up arrow, k, x - rotate clockwise
	ActionPause          // Space, P - pause/resume
	ActionBack           // B, Escape - back to lobby
	ActionRestart        // R - restart with the same player and difficulty
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Gameplay reports whether the action manipulates the falling piece.
func (a Action) Gameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionDown, ActionRotate:
		return true
	}
	return false
}
