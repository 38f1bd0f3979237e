package hanoi

import "fmt"

// frame is one pending unit of work: either expand n disks from src to dst
// via aux, or emit the single move src→dst.
type frame struct {
	n             int
	src, dst, aux Rod
	emit          bool
}

// Solve returns the canonical optimal plan moving n disks from source to
// target using auxiliary as the spare. The plan has exactly 2^n-1 moves.
//
// The recursion is unrolled onto an explicit worklist; the emitted order is
// the same as the textbook recursive version.
func Solve(n int, source, target, auxiliary Rod) Plan {
	plan := make(Plan, 0, MoveCount(n))
	Walk(n, source, target, auxiliary, func(_ int, m Move) bool {
		plan = append(plan, m)
		return true
	})
	return plan
}

// Walk streams the moves of Solve to fn without materializing the plan.
// Returning false from fn stops the walk. It panics on negative n or on
// rods that are not three distinct valid rods.
func Walk(n int, source, target, auxiliary Rod, fn func(i int, m Move) bool) {
	mustArgs(n, source, target, auxiliary)
	if n == 0 {
		return
	}

	// depth is bounded by 2n+1 frames
	stack := make([]frame, 0, 2*n+1)
	stack = append(stack, frame{n: n, src: source, dst: target, aux: auxiliary})
	i := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			if !fn(i, Move{Source: f.src, Target: f.dst}) {
				return
			}
			i++
			continue
		}
		if f.n == 0 {
			continue
		}
		// pushed in reverse of execution order
		stack = append(stack,
			frame{n: f.n - 1, src: f.aux, dst: f.dst, aux: f.src},
			frame{src: f.src, dst: f.dst, emit: true},
			frame{n: f.n - 1, src: f.src, dst: f.aux, aux: f.dst},
		)
	}
}

func mustArgs(n int, source, target, auxiliary Rod) {
	if n < 0 {
		panic(fmt.Sprintf("hanoi: negative disk count %d", n))
	}
	if !source.Valid() || !target.Valid() || !auxiliary.Valid() {
		panic(fmt.Sprintf("hanoi: invalid rods %d,%d,%d", source, target, auxiliary))
	}
	if source == target || source == auxiliary || target == auxiliary {
		panic(fmt.Sprintf("hanoi: rods must be distinct, got %s,%s,%s", source, target, auxiliary))
	}
}
