package playback

import "github.com/san-kum/hanoi/internal/hanoi"

type State int

const (
	// Idle: nothing loaded, freshly loaded, or aborted.
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

type Event int

const (
	EventLoad Event = iota
	EventStart
	EventStop
	EventMove
	EventDrained
	EventAbort
)

func (e Event) String() string {
	switch e {
	case EventLoad:
		return "load"
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventMove:
		return "move"
	case EventDrained:
		return "drained"
	case EventAbort:
		return "abort"
	}
	return "unknown"
}

// Transition is the scheduler's state machine. drained reports whether the
// loaded plan has no moves left. Moves and drain do not change the state: a
// drained Running scheduler is idle in effect but stays Running until
// stopped or reloaded.
func Transition(s State, e Event, drained bool) State {
	switch e {
	case EventLoad, EventAbort:
		return Idle
	case EventStart:
		if drained {
			return s
		}
		return Running
	case EventStop:
		if s == Running {
			return Paused
		}
	}
	return s
}

// Change is delivered to subscribers after every event.
type Change struct {
	From, To State
	Event    Event
	// Move and Step are set for EventMove.
	Move *hanoi.Move
	Step int
	Err  error
}
