package playback

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
)

// Home and Goal are the conventional rods: disks start on A and end on C,
// with B as the spare.
const (
	Home  = hanoi.A
	Goal  = hanoi.C
	Spare = hanoi.B
)

// Scheduler drains a plan one move at a time on an externally driven clock
// and keeps the rendered disks animating. It is not safe for concurrent use;
// the frame loop owns it.
type Scheduler struct {
	n      int
	plan   hanoi.Plan
	cursor int
	tower  *hanoi.Tower
	disks  []*anim.Disk
	layout anim.Layout
	state  State

	// next eligible dispatch time, absolute in tick units
	timer float64
	armed bool

	lastMove *hanoi.Move
	lastDisk int

	stepDuration float64
	strict       bool
	subs         []func(Change)
	log          zerolog.Logger
}

type Option func(*Scheduler)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithStepDuration sets the time per move. Keyframe durations are scaled to
// fit it.
func WithStepDuration(d float64) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.stepDuration = d
		}
	}
}

// WithStrict makes the tower check the stacking rule on every push.
func WithStrict(strict bool) Option {
	return func(s *Scheduler) { s.strict = strict }
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		stepDuration: anim.StepDuration,
		lastDisk:     -1,
		log:          zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.reset(0, nil)
	return s
}

// Subscribe registers fn for state-change notifications.
func (s *Scheduler) Subscribe(fn func(Change)) {
	s.subs = append(s.subs, fn)
}

// Load solves the n-disk puzzle and resets the scheduler to Idle with all
// disks on the home rod. Counts outside [config.MinDisks, config.MaxDisks]
// are rejected and leave the scheduler untouched.
func (s *Scheduler) Load(n int) error {
	if err := config.CheckDisks(n); err != nil {
		return err
	}
	return s.LoadPlan(n, hanoi.Solve(n, Home, Goal, Spare))
}

// LoadPlan installs an arbitrary plan for n disks. The plan is trusted.
func (s *Scheduler) LoadPlan(n int, plan hanoi.Plan) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", hanoi.ErrInvalidDiskCount, n)
	}
	s.reset(n, plan)
	s.log.Debug().Int("disks", n).Int("moves", len(plan)).Msg("plan loaded")
	s.fire(Change{Event: EventLoad})
	return nil
}

// Reload loads the current disk count again.
func (s *Scheduler) Reload() error {
	return s.Load(s.n)
}

func (s *Scheduler) reset(n int, plan hanoi.Plan) {
	s.n = n
	s.plan = plan
	s.cursor = 0
	s.armed = false
	s.timer = 0
	s.lastMove = nil
	s.lastDisk = -1
	s.layout = anim.NewLayout(n)
	s.tower = hanoi.NewTower(n, Home)
	s.tower.Strict = s.strict

	s.disks = make([]*anim.Disk, n)
	for rank := 0; rank < n; rank++ {
		row := n - 1 - rank
		s.disks[rank] = anim.NewDisk(rank, s.layout.DiskRadius(rank), s.layout.SlotPosition(row, Home.Index()))
	}
}

func (s *Scheduler) Start() { s.fire(Change{Event: EventStart}) }
func (s *Scheduler) Stop()  { s.fire(Change{Event: EventStop}) }

// Toggle stops a running scheduler and starts any other.
func (s *Scheduler) Toggle() {
	if s.state == Running {
		s.Stop()
		return
	}
	s.Start()
}

// Tick advances the scheduler to time delta, which must not decrease
// between calls. While Running, the next move is dispatched once the
// previous one's step duration has passed. Disks with pending keyframes
// are updated in every state.
//
// A move that cannot be applied (an empty source rod, or a larger disk onto
// a smaller one in strict mode) aborts the cycle: the plan is dropped,
// the scheduler returns to Idle and the error is returned.
func (s *Scheduler) Tick(delta float64) error {
	var err error
	if s.state == Running && !s.Drained() && (!s.armed || delta >= s.timer) {
		err = s.dispatch(delta)
	}
	for _, d := range s.disks {
		d.Update(delta)
	}
	return err
}

func (s *Scheduler) dispatch(delta float64) error {
	step := s.cursor
	m := s.plan[step]

	row := s.tower.Height(m.Target)
	d, err := s.tower.ApplyAt(step, m)
	if err != nil {
		s.log.Error().Err(err).Int("step", step).Msg("playback aborted")
		s.plan = nil
		s.cursor = 0
		s.armed = false
		s.fire(Change{Event: EventAbort, Move: &m, Step: step, Err: err})
		return err
	}
	s.cursor++

	disk := s.disks[d]
	dest := s.layout.SlotPosition(row, m.Target.Index())
	keys := anim.ArcKeyframes(disk.Position(), dest, s.layout.LiftHeight())
	if s.stepDuration != anim.StepDuration {
		keys = anim.Scale(keys, s.stepDuration/anim.StepDuration)
	}
	disk.SetTarget(keys)

	s.timer = delta + s.stepDuration
	s.armed = true
	s.lastMove = &m
	s.lastDisk = int(d)

	s.log.Debug().
		Int("step", step).
		Str("source", m.Source.String()).
		Str("target", m.Target.String()).
		Int("disk", int(d)).
		Msg("move")
	s.fire(Change{Event: EventMove, Move: &m, Step: step})
	if s.Drained() {
		s.log.Debug().Int("moves", len(s.plan)).Msg("plan drained")
		s.fire(Change{Event: EventDrained, Step: step})
	}
	return nil
}

func (s *Scheduler) fire(c Change) {
	c.From = s.state
	c.To = Transition(s.state, c.Event, s.Drained())
	s.state = c.To
	if c.From != c.To {
		s.log.Debug().Str("from", c.From.String()).Str("to", c.To.String()).Str("event", c.Event.String()).Msg("transition")
	}
	for _, fn := range s.subs {
		fn(c)
	}
}

func (s *Scheduler) State() State { return s.state }

// Drained reports whether every move of the loaded plan has been applied.
func (s *Scheduler) Drained() bool { return s.cursor >= len(s.plan) }

// Step is the number of moves applied so far.
func (s *Scheduler) Step() int { return s.cursor }

func (s *Scheduler) Remaining() int { return len(s.plan) - s.cursor }

func (s *Scheduler) Total() int { return len(s.plan) }

func (s *Scheduler) DiskCount() int { return s.n }

func (s *Scheduler) Layout() anim.Layout { return s.layout }

func (s *Scheduler) StepDuration() float64 { return s.stepDuration }

// Plan returns the loaded plan; callers must not modify it.
func (s *Scheduler) Plan() hanoi.Plan { return s.plan }

func (s *Scheduler) Tower() hanoi.Snapshot { return s.tower.Snapshot() }

// LastMove returns the most recently dispatched move and the disk it moved.
func (s *Scheduler) LastMove() (hanoi.Move, int, bool) {
	if s.lastMove == nil {
		return hanoi.Move{}, -1, false
	}
	return *s.lastMove, s.lastDisk, true
}

// Progress is the fraction of the plan applied, 1 for an empty plan.
func (s *Scheduler) Progress() float64 {
	if len(s.plan) == 0 {
		return 1
	}
	return float64(s.cursor) / float64(len(s.plan))
}

// DiskView is a read-only copy of a rendered disk.
type DiskView struct {
	Rank      int
	Radius    float64
	Position  anim.Vec3
	Animating bool
	Keyframe  int
}

// Disks returns the rendered disks in rank order.
func (s *Scheduler) Disks() []DiskView {
	out := make([]DiskView, len(s.disks))
	for i, d := range s.disks {
		out[i] = DiskView{
			Rank:      d.Rank,
			Radius:    d.Radius,
			Position:  d.Position(),
			Animating: d.Animating(),
			Keyframe:  d.KeyIndex(),
		}
	}
	return out
}
