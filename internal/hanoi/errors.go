package hanoi

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRod indicates a pop from a rod with no disks. A plan produced
	// by Solve never triggers it, so seeing it means broken sequencing.
	ErrEmptyRod = errors.New("hanoi: pop from empty rod")

	// ErrIllegalMove indicates a larger disk placed on a smaller one.
	ErrIllegalMove = errors.New("hanoi: larger disk placed on smaller disk")

	// ErrInvalidDiskCount indicates a disk count outside the supported range.
	ErrInvalidDiskCount = errors.New("hanoi: invalid disk count")
)

// RodError wraps a tower error with the rod and, when known, the move and
// plan step that caused it.
type RodError struct {
	Rod     Rod
	Move    *Move
	Step    int
	Wrapped error
}

func (e *RodError) Error() string {
	if e.Move != nil {
		return fmt.Sprintf("step %d (%s): rod %s: %v", e.Step, e.Move, e.Rod, e.Wrapped)
	}
	return fmt.Sprintf("rod %s: %v", e.Rod, e.Wrapped)
}

func (e *RodError) Unwrap() error {
	return e.Wrapped
}
