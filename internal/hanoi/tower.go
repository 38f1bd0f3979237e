package hanoi

import (
	"errors"
	"fmt"
)

// Tower holds the three rod stacks, bottom of each stack at index 0.
//
// PushTop does not check the stacking rule unless Strict is set; the plan
// produced by Solve is legal by construction.
type Tower struct {
	stacks [NumRods][]Disk
	n      int

	// Strict makes PushTop panic when a disk lands on a smaller one.
	Strict bool
}

// NewTower stacks n disks on home, largest (rank n-1) at the bottom.
func NewTower(n int, home Rod) *Tower {
	if n < 0 {
		panic(fmt.Sprintf("hanoi: negative disk count %d", n))
	}
	t := &Tower{n: n}
	for i := range t.stacks {
		t.stacks[i] = make([]Disk, 0, n)
	}
	for rank := n - 1; rank >= 0; rank-- {
		t.stacks[home] = append(t.stacks[home], Disk(rank))
	}
	return t
}

// DiskCount is the number of disks the tower was built with.
func (t *Tower) DiskCount() int { return t.n }

func (t *Tower) Height(r Rod) int { return len(t.stacks[r]) }

func (t *Tower) Top(r Rod) (Disk, bool) {
	s := t.stacks[r]
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (t *Tower) PopTop(r Rod) (Disk, error) {
	s := t.stacks[r]
	if len(s) == 0 {
		return 0, &RodError{Rod: r, Wrapped: ErrEmptyRod}
	}
	d := s[len(s)-1]
	t.stacks[r] = s[:len(s)-1]
	return d, nil
}

func (t *Tower) PushTop(r Rod, d Disk) {
	if t.Strict {
		if top, ok := t.Top(r); ok && top < d {
			panic(&RodError{Rod: r, Wrapped: fmt.Errorf("%w: disk %d onto %d", ErrIllegalMove, d, top)})
		}
	}
	t.stacks[r] = append(t.stacks[r], d)
}

// Apply moves the top disk of m.Source onto m.Target and returns it. A
// Strict tower checks the move first and leaves every rod untouched when it
// would break the stacking rule.
func (t *Tower) Apply(m Move) (Disk, error) {
	if t.Strict {
		d, ok := t.Top(m.Source)
		if !ok {
			return 0, &RodError{Rod: m.Source, Wrapped: ErrEmptyRod}
		}
		if top, ok := t.Top(m.Target); ok && top < d {
			return 0, &RodError{Rod: m.Target, Wrapped: fmt.Errorf("%w: disk %d onto %d", ErrIllegalMove, d, top)}
		}
	}
	d, err := t.PopTop(m.Source)
	if err != nil {
		return 0, err
	}
	t.PushTop(m.Target, d)
	return d, nil
}

func (t *Tower) Snapshot() Snapshot {
	var s Snapshot
	for i, st := range t.stacks {
		s.rods[i] = append([]Disk(nil), st...)
	}
	s.n = t.n
	return s
}

// Snapshot is an immutable copy of a tower.
type Snapshot struct {
	rods [NumRods][]Disk
	n    int
}

func (s Snapshot) DiskCount() int { return s.n }

func (s Snapshot) Height(r Rod) int { return len(s.rods[r]) }

// Disks returns a copy of the stack on r, bottom first.
func (s Snapshot) Disks(r Rod) []Disk {
	return append([]Disk(nil), s.rods[r]...)
}

// Heights returns the stack height of each rod in A, B, C order.
func (s Snapshot) Heights() [NumRods]int {
	var h [NumRods]int
	for i := range s.rods {
		h[i] = len(s.rods[i])
	}
	return h
}

// Valid reports whether every stack strictly decreases bottom to top and
// every rank 0..n-1 appears exactly once.
func (s Snapshot) Valid() bool {
	seen := make([]bool, s.n)
	total := 0
	for _, st := range s.rods {
		for i, d := range st {
			if d < 0 || int(d) >= s.n || seen[d] {
				return false
			}
			seen[d] = true
			if i > 0 && st[i-1] <= d {
				return false
			}
			total++
		}
	}
	return total == s.n
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A%v B%v C%v", s.rods[A], s.rods[B], s.rods[C])
}

// Replay applies plan to a fresh n-disk tower on A in strict mode and
// returns the final state. The first illegal or impossible move is
// reported as a *RodError carrying its step.
func Replay(n int, plan Plan) (Snapshot, error) {
	t := NewTower(n, A)
	t.Strict = true
	for i, m := range plan {
		if _, err := t.ApplyAt(i, m); err != nil {
			return t.Snapshot(), err
		}
	}
	return t.Snapshot(), nil
}

// ApplyAt is Apply for the move at the given plan step. Errors, including a
// Strict stacking violation, come back as a *RodError carrying the move and
// step instead of a panic.
func (t *Tower) ApplyAt(step int, m Move) (d Disk, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RodError)
			if !ok {
				panic(r)
			}
			re.Move, re.Step = &m, step
			err = re
		}
	}()
	d, err = t.Apply(m)
	if err != nil {
		var re *RodError
		if errors.As(err, &re) {
			re.Move, re.Step = &m, step
		}
		return d, err
	}
	return d, nil
}
