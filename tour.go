// Package tsp - tour utilities shared by the local-search optimizers.
//
// A tour is an open permutation of the point indices 0..n-1; the closing
// edge from the last element back to the first is implied. These helpers
// operate purely on tour structure, without touching distance matrices.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time, in-place mutations where possible.
package tsp

// workingTour prepares the private tour an optimizer will mutate.
// A nil start yields the identity permutation 0..n-1; otherwise start is
// validated as a permutation of 0..n-1 and copied, so the caller's slice
// is never mutated.
//
// Complexity: O(n) time, O(n) space.
func workingTour(n int, start []int) ([]int, error) {
	tour := make([]int, n)

	var i int
	if start == nil {
		for i = 0; i < n; i++ {
			tour[i] = i
		}

		return tour, nil
	}

	if err := validatePermutation(start, n); err != nil {
		return nil, err
	}
	copy(tour, start)

	return tour, nil
}

// validatePermutation checks that perm is a permutation of {0..n-1} of
// length n. n == 0 is legal and matches only the empty slice.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		// So does a duplicate.
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// reverseRange reverses the inclusive segment tour[i..k] in place.
// This is the primitive behind every 2-opt move and five of the seven
// 3-opt reconnections.
//
// Contract: 0 ≤ i ≤ k ≤ len(tour)-1; i == k is a no-op.
//
// Complexity: O(k-i) time, O(1) space.
func reverseRange(tour []int, i, k int) error {
	if i < 0 || i > k || k >= len(tour) {
		return ErrOutOfRange
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}
