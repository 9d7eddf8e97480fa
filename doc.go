// Package tsp improves Travelling Salesman tours by deterministic local search.
//
// It provides two classic heuristics on a symmetric distance matrix:
//
//   - TwoOpt — removes two edges per move and reconnects the tour by
//     reversing the segment between them; O(n²) per sweep.
//
//   - ThreeOpt — removes three edges per move and reconnects via one of
//     seven segment reversal/exchange combinations; O(n³) per sweep.
//
// Both run first-improvement sweeps until a full sweep finds no move that
// shortens the tour by more than a fixed tolerance, so they always terminate
// at a local optimum.
//
// Distance matrices are built from 2D or 3D Euclidean coordinates
// (NewEuclid2D, NewEuclid3D) or ingested from a precomputed table
// (NewFromDistances). The element type is generic over any floating-point
// type. A Matrix is immutable once built and may be shared across
// concurrent optimizer calls; each call mutates only its own working tour.
//
// Use this package when you already have a feasible tour (or are happy to
// start from the identity ordering) and want a shorter one cheaply.
package tsp
