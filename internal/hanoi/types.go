package hanoi

import "fmt"

// Rod identifies one of the three fixed rods. A is home, C the default target.
type Rod uint8

const (
	A Rod = iota
	B
	C
)

// NumRods is fixed by the puzzle.
const NumRods = 3

var rodNames = [NumRods]string{"A", "B", "C"}

func (r Rod) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rod(%d)", uint8(r))
	}
	return rodNames[r]
}

// Index returns the column of the rod in the scene, 0 for A.
func (r Rod) Index() int { return int(r) }

func (r Rod) Valid() bool { return r < NumRods }

// ParseRod accepts "A", "B" or "C" (case-insensitive).
func ParseRod(s string) (Rod, error) {
	switch s {
	case "A", "a":
		return A, nil
	case "B", "b":
		return B, nil
	case "C", "c":
		return C, nil
	}
	return 0, fmt.Errorf("hanoi: unknown rod %q", s)
}

// Disk is a size rank, 0 being the smallest.
type Disk int

type Move struct {
	Source Rod
	Target Rod
}

func (m Move) String() string { return m.Source.String() + "→" + m.Target.String() }

// Plan is the ordered move list solving a puzzle. Treat it as read-only.
type Plan []Move

func (p Plan) Len() int { return len(p) }

// MoveCount returns 2^n - 1.
func MoveCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}
