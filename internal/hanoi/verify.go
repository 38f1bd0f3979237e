package hanoi

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// checkEvery is how many moves Verify makes between context checks.
const checkEvery = 1 << 16

// Verification is the outcome of checking the optimal plan for N disks.
type Verification struct {
	N     int
	Moves uint64
	Final Snapshot
	Took  time.Duration
	Err   error
}

// Verify streams the A→C plan for n disks through a strict tower and checks
// that it is legal, has 2^n-1 moves and ends with every disk on C.
func Verify(ctx context.Context, n int) Verification {
	start := time.Now()
	v := Verification{N: n}
	if n < 0 {
		v.Err = fmt.Errorf("%w: %d", ErrInvalidDiskCount, n)
		return v
	}

	t := NewTower(n, A)
	t.Strict = true
	Walk(n, A, C, B, func(i int, m Move) bool {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				v.Err = err
				return false
			}
		}
		if _, err := t.ApplyAt(i, m); err != nil {
			v.Err = err
			return false
		}
		v.Moves++
		return true
	})
	v.Final = t.Snapshot()
	v.Took = time.Since(start)
	if v.Err != nil {
		return v
	}

	if v.Moves != MoveCount(n) {
		v.Err = fmt.Errorf("%d moves for %d disks, want %d", v.Moves, n, MoveCount(n))
	} else if v.Final.Height(C) != n || !v.Final.Valid() {
		v.Err = fmt.Errorf("plan for %d disks ended in %s", n, v.Final)
	}
	return v
}

// VerifyAll runs Verify for every count concurrently and returns the results
// in the order given. The first failure is also returned as the error.
func VerifyAll(ctx context.Context, counts []int) ([]Verification, error) {
	results := make([]Verification, len(counts))

	var wg sync.WaitGroup
	for i, n := range counts {
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()
			results[idx] = Verify(ctx, n)
		}(i, n)
	}

	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			return results, r.Err
		}
	}

	return results, nil
}
