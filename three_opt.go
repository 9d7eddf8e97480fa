// Package tsp - 3-opt local search engine.
//
// ThreeOpt performs deterministic first-improvement 3-opt on a cyclic tour.
// A candidate triple (a, b, c) with a < b < c removes the three edges
// (a,a+1), (b,b+1) and (c, c+1 mod n), splitting the tour into a prefix
// A = T[..a], segment B = T(a..b], segment C = T(b..c] and a fixed tail.
// Seven reconnections are costed and the cheapest is applied when it beats
// the current edges by more than the fixed tolerance:
//
//	move | new edges                     | transform
//	-----+-------------------------------+--------------------------------
//	  0  | (a,a+1) (b,c)   (b+1,c+1)     | reverse C
//	  1  | (a,c)   (b+1,b) (a+1,c+1)     | reverse B·C
//	  2  | (a,b)   (a+1,b+1) (c,c+1)     | reverse B
//	  3  | (a,b+1) (c,b)   (a+1,c+1)     | reverse B, then exchange B,C
//	  4  | (a,b)   (a+1,c) (b+1,c+1)     | reverse B, then reverse C
//	  5  | (a,c)   (b+1,a+1) (b,c+1)     | reverse C, then exchange B,C
//	  6  | (a,b+1) (c,a+1) (b,c+1)       | exchange B,C
//
// (Vertices named by tour position; c+1 taken modulo n. Moves 0-2 are the
// embedded 2-opt moves of the neighborhood; 3-6 are the proper 3-opt
// reconnections.)
//
// Design:
//   - Deterministic scanning order over all triples a < b < c; no RNG.
//   - First-improvement, exactly as in TwoOpt: the winning move is applied
//     immediately and the sweep continues from the current triple. Do not
//     convert this to best-improvement per sweep.
//   - Strict sentinel errors only; no fmt.Errorf in hot paths.
//
// Contracts:
//   - Same as TwoOpt; in particular every reversed or exchanged range
//     starts at a+1 ≥ 1, so position 0 is never moved.
//
// Complexity:
//   - One sweep: O(n³) triples, O(1) per costing; an accepted move costs
//     O(n) worst case. Termination by strict length decrease, as in TwoOpt.
package tsp

import "golang.org/x/exp/constraints"

// numMoves is the size of the 3-opt reconnection neighborhood per triple.
const numMoves = 7

// ThreeOpt runs deterministic first-improvement 3-opt from start (identity
// permutation when start is nil) and returns the improved tour with its
// recomputed cyclic length.
//
// Errors: ErrInvalidTour when start is not a permutation of 0..n-1.
func ThreeOpt[N constraints.Float](m *Matrix[N], start []int) (Result[N], error) {
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
			a, b, c int          // candidate cut positions, a < b < c
			cn      int          // (c+1) mod n, hoisted per c
			current N            // summed length of the three removed edges
			costs   [numMoves]N  // the seven candidate reconnection costs
			best, i int          // argmin over costs
		)
		for a = 0; a < n; a++ {
			for b = a + 1; b < n; b++ {
				for c = b + 1; c < n; c++ {
					cn = (c + 1) % n
					current = m.at(cur[a], cur[a+1]) +
						m.at(cur[b], cur[b+1]) +
						m.at(cur[c], cur[cn])

					// Cost every reconnection of A + B + C + tail.
					costs[0] = m.at(cur[a], cur[a+1]) + m.at(cur[b], cur[c]) + m.at(cur[b+1], cur[cn])
					costs[1] = m.at(cur[a], cur[c]) + m.at(cur[b+1], cur[b]) + m.at(cur[a+1], cur[cn])
					costs[2] = m.at(cur[a], cur[b]) + m.at(cur[a+1], cur[b+1]) + m.at(cur[c], cur[cn])
					costs[3] = m.at(cur[a], cur[b+1]) + m.at(cur[c], cur[b]) + m.at(cur[a+1], cur[cn])
					costs[4] = m.at(cur[a], cur[b]) + m.at(cur[a+1], cur[c]) + m.at(cur[b+1], cur[cn])
					costs[5] = m.at(cur[a], cur[c]) + m.at(cur[b+1], cur[a+1]) + m.at(cur[b], cur[cn])
					costs[6] = m.at(cur[a], cur[b+1]) + m.at(cur[c], cur[a+1]) + m.at(cur[b], cur[cn])

					best = 0
					for i = 1; i < numMoves; i++ {
						if costs[i] < costs[best] {
							best = i
						}
					}

					if costs[best]-current < -eps {
						stable = false
						if err = applyMove(cur, a, b, c, best); err != nil {
							return Result[N]{}, err
						}
					}
				}
			}
		}
	}

	return Result[N]{Tour: cur, Length: tourLength(m, cur)}, nil
}

// applyMove mutates the tour according to the selected reconnection.
// Segments B = tour(a..b] and C = tour(b..c] in position terms; the
// half-open Exchange boundaries are the cut positions shifted by one.
func applyMove(tour []int, a, b, c, move int) error {
	switch move {
	case 0:
		return reverseRange(tour, b+1, c)
	case 1:
		return reverseRange(tour, a+1, c)
	case 2:
		return reverseRange(tour, a+1, b)
	case 3:
		if err := reverseRange(tour, a+1, b); err != nil {
			return err
		}

		return Exchange(tour, a+1, b+1, c+1)
	case 4:
		if err := reverseRange(tour, a+1, b); err != nil {
			return err
		}

		return reverseRange(tour, b+1, c)
	case 5:
		if err := reverseRange(tour, b+1, c); err != nil {
			return err
		}

		return Exchange(tour, a+1, b+1, c+1)
	default: // move 6
		return Exchange(tour, a+1, b+1, c+1)
	}
}
