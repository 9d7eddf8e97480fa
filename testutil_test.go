// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality that already lives in focused test
// files.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/Armavica/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for all randomized property trials.
	seedDet = int64(1)

	// lenSlack absorbs summation-order rounding when comparing recomputed
	// lengths in the non-increase property.
	lenSlack = 1e-9
)

// -----------------------------------------------------------------------------
// Instance generation and tour checks
// -----------------------------------------------------------------------------

// randPoints2D draws n uniform points in the unit square from rng.
func randPoints2D(rng *rand.Rand, n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	return pts
}

// requirePermutation fails the test unless tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	if len(tour) != n {
		t.Fatalf("tour length = %d, want %d", len(tour), n)
	}
	seen := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		if tour[i] < 0 || tour[i] >= n || seen[tour[i]] {
			t.Fatalf("tour %v is not a permutation of 0..%d", tour, n-1)
		}
		seen[tour[i]] = true
	}
}

// identityLength computes the length of the identity tour on m by summing
// all cyclic edges, independently of the optimizers.
func identityLength(t *testing.T, m *tsp.Matrix[float64], n int) float64 {
	t.Helper()
	var (
		sum  float64
		i    int
		d    float64
		err  error
		next int
	)
	for i = 0; i < n; i++ {
		next = (i + 1) % n
		if d, err = m.At(i, next); err != nil {
			t.Fatalf("At(%d,%d): %v", i, next, err)
		}
		sum += d
	}

	return sum
}
