// Package tsp - in-place exchange of two adjacent blocks of a slice.
//
// Exchange is the segment primitive behind the 3-opt reconnections that
// reorder segments without reversing them. It operates purely on positions
// and is independent of the matrix element type, so it is generic over any
// slice element.
package tsp

// Exchange swaps the adjacent blocks seq[a:b] and seq[b:c] in place,
// preserving the internal order of each block and leaving every other
// position untouched: ...A [B] [C]... becomes ...A [C] [B]...
//
// Contract:
//   - 0 ≤ a ≤ b ≤ c ≤ len(seq); otherwise ErrOutOfRange.
//   - No-op when either block is empty (a == b or b == c).
//
// Algorithm: swap the first min(|B|, |C|) corresponding elements of the two
// blocks pairwise; this places the smaller block entirely and leaves a
// shrunk instance of the same problem over the unmatched remainder of the
// larger block. Iterate until one block is empty. The net effect is a
// rotation of seq[a:c] by |B| positions.
//
// Complexity: O(c-a) time, O(1) extra space.
func Exchange[T any](seq []T, a, b, c int) error {
	if a < 0 || a > b || b > c || c > len(seq) {
		return ErrOutOfRange
	}

	var (
		nb, nc int // current block sizes |B|, |C|
		k, i   int // pairwise swap count and iterator
	)
	for {
		nb, nc = b-a, c-b
		if nb == 0 || nc == 0 {
			return nil
		}

		// Swap the first k elements of B with the first k elements of C.
		k = nb
		if nc < k {
			k = nc
		}
		for i = 0; i < k; i++ {
			seq[a+i], seq[b+i] = seq[b+i], seq[a+i]
		}

		// The smaller block is now fully placed; shrink to the remainder.
		switch {
		case nb < nc:
			// All of B sits at [b, b+k); the tail of C at [b+k, c).
			a, b = b, b+k
		case nb > nc:
			// All of C is placed; B's tail at [a+k, b), B's head at [b, c).
			a += k
		default:
			// Equal sizes: both blocks fully placed.
			return nil
		}
	}
}
