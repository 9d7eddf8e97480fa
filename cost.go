// Package tsp - cyclic tour length.
//
// A single allocation-free accumulation over the n edges of a tour,
// including the closing edge back to the start. Kept separate from the
// optimizers so both recompute their final length the same way.
package tsp

import "golang.org/x/exp/constraints"

// tourLength sums the cyclic edges tour[i]→tour[(i+1) mod n] over the
// whole tour. Empty and single-element tours have length zero.
//
// Contract: tour is a valid permutation of the matrix indices (optimizers
// validate before calling).
//
// Complexity: O(n) time, O(1) space.
func tourLength[N constraints.Float](m *Matrix[N], tour []int) N {
	var (
		total N
		i     int
		n     = len(tour)
	)
	for i = 0; i < n; i++ {
		total += m.at(tour[i], tour[(i+1)%n])
	}

	return total
}
