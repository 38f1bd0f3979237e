// Package hanoi provides the three-rod Towers of Hanoi model.
//
//   - [Solve] and [Walk]: the optimal move sequence, 2^n-1 moves
//   - [Tower]: the three rod stacks, with push/pop only at the top
//   - [Replay]: check a plan against a fresh tower
//
// # Example
//
//	plan := hanoi.Solve(3, hanoi.A, hanoi.C, hanoi.B)
//	// A→C A→B C→B A→C B→A B→C A→C
//	snap, err := hanoi.Replay(3, plan)
//
// # Thread Safety
//
// Solve and Walk are pure. Tower is not safe for concurrent use.
package hanoi
