package tetris

// EventType classifies a presentation signal emitted by the engine.
type EventType int

const (
	EventStarted     EventType = iota // A session began
	EventPieceLocked                  // The active piece merged into the grid
	EventLineClear                    // One row was swept (one flash pulse per row)
	EventTopOut                       // A new piece collided at its spawn position
	EventTimeUp                       // The countdown reached zero
)

// String returns a short event name for logs.
func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventPieceLocked:
		return "piece_locked"
	case EventLineClear:
		return "line_clear"
	case EventTopOut:
		return "top_out"
	case EventTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Event is a cosmetic signal. Events never feed back into engine state.
type Event struct {
	Type  EventType
	Score int // Score at the time the event fired
}
