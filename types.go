// Package tsp - sentinel error set and shared result type.
//
// This file defines ONLY package-level sentinel errors and the Result
// container used across the package. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. Nothing here panics
// on user input.
package tsp

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// eps is the minimum magnitude of improvement required to accept a local
// search move. Deltas in (-eps, 0) are floating-point noise; accepting them
// could oscillate forever, so eps is a fixed constant rather than an option.
const eps = 1e-10

// symTol is the structural tolerance for symmetry/diagonal checks when
// ingesting a precomputed distance table. It is independent from eps
// (which governs "improvement" in local search).
const symTol = 1e-12

var (
	// ErrInvalidTour is returned when a supplied starting tour is not a
	// permutation of the matrix indices 0..n-1 (wrong length, duplicate,
	// or out-of-range entry). No partial result is produced.
	ErrInvalidTour = errors.New("tsp: start tour is not a permutation of matrix indices")

	// ErrOutOfRange indicates that an index or segment boundary is outside
	// valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("tsp: index out of range")

	// ErrNonSquare signals that an ingested distance table is not n×n.
	ErrNonSquare = errors.New("tsp: distance table is not square")

	// ErrAsymmetry signals that an ingested distance table violated
	// symmetry beyond the structural tolerance.
	ErrAsymmetry = errors.New("tsp: distance table is not symmetric within tolerance")

	// ErrNonZeroDiagonal signals a diagonal entry that is not ~0 within
	// the structural tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero within tolerance")

	// ErrNegativeDistance signals a negative entry in an ingested table;
	// distances must be non-negative.
	ErrNegativeDistance = errors.New("tsp: negative distance")
)

// Result holds the outcome of an optimizer call.
type Result[N constraints.Float] struct {
	// Tour is the improved cyclic tour: a permutation of 0..n-1, with the
	// closing edge from Tour[n-1] back to Tour[0] implied.
	Tour []int

	// Length is the total cyclic length of Tour, recomputed by summing
	// all n edges of the final tour.
	Length N
}
