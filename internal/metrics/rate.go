package metrics

import "github.com/san-kum/hanoi/internal/playback"

// MoveRate is the number of dispatched moves per second of clock time,
// measured from the first move.
type MoveRate struct {
	name        string
	moves       int
	first, last float64
}

func NewMoveRate() *MoveRate {
	return &MoveRate{name: "move_rate"}
}

func (r *MoveRate) Name() string {
	return r.name
}

func (r *MoveRate) Observe(c playback.Change, t float64) {
	if c.Event != playback.EventMove {
		return
	}
	if r.moves == 0 {
		r.first = t
	}
	r.last = t
	r.moves++
}

func (r *MoveRate) Value() float64 {
	if r.moves < 2 || r.last <= r.first {
		return 0
	}
	return float64(r.moves-1) / ((r.last - r.first) / 1000)
}

func (r *MoveRate) Reset() {
	r.moves = 0
	r.first, r.last = 0, 0
}
