package metrics

import "github.com/san-kum/hanoi/internal/playback"

// Travel is the mean number of rod columns crossed per move: 1 between
// neighbours, 2 between A and C.
type Travel struct {
	name    string
	sum     int
	samples int
}

func NewTravel() *Travel {
	return &Travel{name: "travel"}
}

func (tr *Travel) Name() string {
	return tr.name
}

func (tr *Travel) Observe(c playback.Change, t float64) {
	if c.Event != playback.EventMove || c.Move == nil {
		return
	}
	d := c.Move.Target.Index() - c.Move.Source.Index()
	if d < 0 {
		d = -d
	}
	tr.sum += d
	tr.samples++
}

func (tr *Travel) Value() float64 {
	if tr.samples == 0 {
		return 0
	}
	return float64(tr.sum) / float64(tr.samples)
}

func (tr *Travel) Reset() {
	tr.sum = 0
	tr.samples = 0
}

// Interruptions counts how often a running playback was stopped.
type Interruptions struct {
	name  string
	count int
}

func NewInterruptions() *Interruptions {
	return &Interruptions{name: "interruptions"}
}

func (i *Interruptions) Name() string {
	return i.name
}

func (i *Interruptions) Observe(c playback.Change, t float64) {
	if c.Event == playback.EventStop && c.From == playback.Running {
		i.count++
	}
}

func (i *Interruptions) Value() float64 {
	return float64(i.count)
}

func (i *Interruptions) Reset() {
	i.count = 0
}
