// Package tsp - symmetric distance matrices over a generic float type.
//
// A Matrix is a row-major flat table of pairwise distances, built once from
// Euclidean coordinates (NewEuclid2D / NewEuclid3D) or ingested from a
// caller-precomputed table (NewFromDistances). It is immutable after
// construction: optimizers only read it, so a single Matrix may be shared
// by reference across any number of concurrent optimizer calls.
//
// Design:
//   - Flat []N storage with linearized indexing for cache-friendly reads.
//   - Bounds-checked public At; an unchecked private accessor for hot loops.
//   - Strict sentinels from types.go on ingestion; constructors from
//     coordinates cannot fail (an empty input yields a 0×0 matrix).
package tsp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Matrix is an immutable n×n symmetric table of pairwise distances,
// indexed by original point index.
//
// Invariants (guaranteed by the constructors):
//   - m.At(i, i) == 0 for all i,
//   - m.At(i, j) == m.At(j, i) for all i, j,
//   - all entries are non-negative.
type Matrix[N constraints.Float] struct {
	n    int // number of points (matrix order)
	data []N // flat backing storage, length == n*n, row-major
}

// NewEuclid2D builds a distance matrix from 2D real coordinates.
// Entry (i,j) is the Euclidean distance between points[i] and points[j].
//
// Complexity: O(n²) time and space.
func NewEuclid2D[N constraints.Float](points [][2]N) *Matrix[N] {
	n := len(points)
	m := &Matrix[N]{n: n, data: make([]N, n*n)}

	var (
		i, j   int // point indices
		dx, dy N   // per-axis differences
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dx = points[i][0] - points[j][0]
			dy = points[i][1] - points[j][1]
			m.data[i*n+j] = sqrt(dx*dx + dy*dy)
		}
	}

	return m
}

// NewEuclid3D builds a distance matrix from 3D real coordinates.
// Entry (i,j) is the Euclidean distance between points[i] and points[j].
//
// Complexity: O(n²) time and space.
func NewEuclid3D[N constraints.Float](points [][3]N) *Matrix[N] {
	n := len(points)
	m := &Matrix[N]{n: n, data: make([]N, n*n)}

	var (
		i, j       int // point indices
		dx, dy, dz N   // per-axis differences
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dx = points[i][0] - points[j][0]
			dy = points[i][1] - points[j][1]
			dz = points[i][2] - points[j][2]
			m.data[i*n+j] = sqrt(dx*dx + dy*dy + dz*dz)
		}
	}

	return m
}

// NewFromDistances ingests a caller-precomputed distance table.
//
// Contract:
//   - dist must be square: every row as long as the number of rows.
//   - dist[i][i] must be ~0 within symTol.
//   - dist[i][j] must equal dist[j][i] within symTol.
//   - all entries must be non-negative.
//
// The table is copied; the caller's slices are never retained or mutated.
// An empty table is legal and yields a 0×0 matrix.
//
// Errors: ErrNonSquare, ErrNonZeroDiagonal, ErrAsymmetry, ErrNegativeDistance.
//
// Complexity: O(n²) time and space.
func NewFromDistances[N constraints.Float](dist [][]N) (*Matrix[N], error) {
	n := len(dist)

	var (
		i, j int // table indices
		x, d N   // current entry; symmetry gap
	)
	// Validate shape first: the symmetry check below reads dist[j][i] for
	// j > i, so every row length must be known good before any cross-row
	// access.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrNonSquare
		}
	}
	// Validate values before allocating the flat copy.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = dist[i][j]
			if x < 0 {
				return nil, ErrNegativeDistance
			}
			if i == j && x > symTol {
				return nil, ErrNonZeroDiagonal
			}
			if d = x - dist[j][i]; d > symTol || d < -symTol {
				return nil, ErrAsymmetry
			}
		}
	}

	m := &Matrix[N]{n: n, data: make([]N, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.data[i*n+j] = dist[i][j]
		}
	}

	return m, nil
}

// Len returns the matrix order n (the number of points).
//
// Complexity: O(1).
func (m *Matrix[N]) Len() int {
	return m.n
}

// At returns the distance between points i and j, or ErrOutOfRange when
// either index is outside [0..n-1].
//
// Complexity: O(1).
func (m *Matrix[N]) At(i, j int) (N, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		var zero N
		return zero, ErrOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// at is the unchecked hot-path accessor. Callers guarantee valid indices
// (optimizers validate tours before the first lookup).
func (m *Matrix[N]) at(i, j int) N {
	return m.data[i*m.n+j]
}

// sqrt computes a square root in the generic element type. The float64
// round-trip is exact for float64 and correctly rounded for float32.
func sqrt[N constraints.Float](x N) N {
	return N(math.Sqrt(float64(x)))
}
