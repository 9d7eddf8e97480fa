// Package tsp - 2-opt local search engine.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic tour.
// For a candidate pair (a, b) the move removes edges (a,a+1) and
// (b, b+1 mod n) and reconnects by reversing tour[a+1..b]:
//
//	Δ = d(T[a],T[b]) + d(T[a+1],T[b+1]) − d(T[a],T[a+1]) − d(T[b],T[b+1])
//
// Design:
//   - Deterministic scanning order; no RNG anywhere.
//   - Strict sentinel errors only (see types.go); no fmt.Errorf in hot paths.
//   - First-improvement: every improving move is applied the moment it is
//     found and the sweep continues from the current pair; the scan is NOT
//     restarted and the best move of a sweep is NOT selected. Both the final
//     tour and the sweep count depend on this, so it is load-bearing.
//   - Acceptance rule Δ < −eps: the fixed tolerance keeps floating-point
//     noise from producing endless zero-gain oscillation.
//
// Contracts:
//   - m is a symmetric matrix from this package (invariants hold by
//     construction).
//   - start, when non-nil, is a permutation of 0..n-1; it is copied, never
//     mutated.
//   - Because a ≥ 0 and every reversed range starts at a+1 ≥ 1, position 0
//     is never moved: the element at position 0 of the starting tour is at
//     position 0 of the result.
//
// Complexity:
//   - One sweep: O(n²) candidate checks; an accepted move costs O(n) worst
//     case for the reversal.
//   - Total length strictly decreases on every accepted move and is bounded
//     below by zero, so the sweep loop terminates without an iteration cap.
package tsp

import "golang.org/x/exp/constraints"

// TwoOpt runs deterministic first-improvement 2-opt from start (identity
// permutation when start is nil) and returns the improved tour with its
// recomputed cyclic length.
//
// Errors: ErrInvalidTour when start is not a permutation of 0..n-1.
func TwoOpt[N constraints.Float](m *Matrix[N], start []int) (Result[N], error) {
	cur, err := workingTour(m.Len(), start)
	if err != nil {
		return Result[N]{}, err
	}
	n := len(cur)

	// Sweep until a full pass accepts no move.
	stable := false
	for !stable {
		stable = true

		var (
			a, b  int // candidate cut positions; edges (a,a+1) and (b,b+1 mod n)
			delta N   // candidate improvement (negative is good)
		)
		// b ≥ a+2 keeps the two removed edges non-adjacent; the wrap edge
		// (n-1, 0) is reached through the (b+1) mod n term.
		for a = 0; a < n; a++ {
			for b = a + 2; b < n; b++ {
				delta = m.at(cur[a], cur[b]) + m.at(cur[a+1], cur[(b+1)%n]) -
					m.at(cur[a], cur[a+1]) - m.at(cur[b], cur[(b+1)%n])
				if delta < -eps {
					stable = false
					if err = reverseRange(cur, a+1, b); err != nil {
						return Result[N]{}, err
					}
				}
			}
		}
	}

	return Result[N]{Tour: cur, Length: tourLength(m, cur)}, nil
}
