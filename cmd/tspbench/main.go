// Command tspbench benchmarks the 2-opt and 3-opt optimizers on random
// uniform instances and prints average tour lengths plus the average
// relative improvement of 3-opt over 2-opt.
//
// Usage:
//
//	tspbench [-trials N] [-points N] [-seed S]
//
// Determinism: instances are drawn from a seeded source, so a fixed seed
// reproduces the exact run.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/Armavica/tsp"
)

func main() {
	var (
		trials = flag.Int("trials", 1000, "number of random instances")
		points = flag.Int("points", 100, "points per instance, uniform in the unit square")
		seed   = flag.Int64("seed", 1, "seed for instance generation")
	)
	flag.Parse()
	if *trials <= 0 || *points < 0 {
		log.Fatal("tspbench: -trials must be positive and -points non-negative")
	}

	rng := rand.New(rand.NewSource(*seed))
	pts := make([][2]float64, *points)

	var (
		avg2, avg3, avg23 float64 // accumulated lengths and relative gains
		t, i              int
	)
	for t = 0; t < *trials; t++ {
		for i = 0; i < *points; i++ {
			pts[i] = [2]float64{rng.Float64(), rng.Float64()}
		}
		m := tsp.NewEuclid2D(pts)

		r2, err := tsp.TwoOpt(m, nil)
		if err != nil {
			log.Fatalf("tspbench: 2-opt: %v", err)
		}
		r3, err := tsp.ThreeOpt(m, nil)
		if err != nil {
			log.Fatalf("tspbench: 3-opt: %v", err)
		}

		avg2 += r2.Length
		avg3 += r3.Length
		if r2.Length > 0 {
			avg23 += (r3.Length - r2.Length) / r2.Length
		}
	}

	n := float64(*trials)
	fmt.Printf("avg 2-opt distance: %v\n", avg2/n)
	fmt.Printf("avg 3-opt distance: %v\n", avg3/n)
	fmt.Printf("avg 3-opt improvement %% vs 2-opt: %v\n", 100*avg23/n)
}
