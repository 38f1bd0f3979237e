package metrics

import "github.com/san-kum/hanoi/internal/playback"

// Metric accumulates a value from scheduler notifications. t is the frame
// clock in milliseconds when the change happened.
type Metric interface {
	Name() string
	Observe(c playback.Change, t float64)
	Value() float64
	Reset()
}

// Set fans a change out to its metrics and resets them all whenever a new
// plan is loaded.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Default is the set shown by the player.
func Default() *Set {
	return NewSet(NewMoveRate(), NewTravel(), NewInterruptions())
}

func (s *Set) Observe(c playback.Change, t float64) {
	if c.Event == playback.EventLoad {
		s.Reset()
	}
	for _, m := range s.metrics {
		m.Observe(c, t)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) Metrics() []Metric { return s.metrics }

// Values maps metric names to their current value.
func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
