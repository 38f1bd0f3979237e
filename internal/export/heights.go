package export

import (
	"fmt"

	"github.com/san-kum/hanoi/internal/hanoi"
)

// RodHeights replays s and returns the height of rods A, B and C before
// the first move and after every move, thinned evenly to about limit+1
// samples per rod when the plan is longer. limit <= 0 keeps every sample.
func RodHeights(s Source, limit int) ([hanoi.NumRods][]float64, error) {
	var out [hanoi.NumRods][]float64
	if s.N < 0 {
		return out, fmt.Errorf("%w: %d", hanoi.ErrInvalidDiskCount, s.N)
	}
	every := uint64(1)
	if limit > 0 && s.Count > uint64(limit) {
		every = (s.Count + uint64(limit) - 1) / uint64(limit)
	}

	t := hanoi.NewTower(s.N, s.home)
	sample := func() {
		for r := hanoi.A; r < hanoi.NumRods; r++ {
			out[r] = append(out[r], float64(t.Height(r)))
		}
	}
	sample()

	t.Strict = true
	var err error
	s.each(func(i int, m hanoi.Move) bool {
		if _, err = t.ApplyAt(i, m); err != nil {
			return false
		}
		if uint64(i+1)%every == 0 || uint64(i+1) == s.Count {
			sample()
		}
		return true
	})
	return out, err
}
