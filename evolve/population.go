// Package evolve implements a niching evolutionary optimizer over a bounded
// 2-D real-valued domain. Candidates are bred with tournament selection under
// a shared-fitness metric, blend crossover and Gaussian mutation, then culled
// by a greedy diversity-preserving survivor selection.
package evolve

import (
	"math"

	"golang.org/x/exp/rand"
)

// Point is one candidate solution in the search domain.
// Both coordinates stay within [0, bound] for the lifetime of a run.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp returns p with both coordinates clipped to [0, bound].
func (p Point) Clamp(bound float64) Point {
	return Point{
		X: clamp(p.X, 0, bound),
		Y: clamp(p.Y, 0, bound),
	}
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Population is an ordered set of candidates. Operators never mutate a
// population in place; each generation replaces it wholesale.
type Population []Point

// NewRandomPopulation draws n points uniformly over [0, bound]².
func NewRandomPopulation(rng *rand.Rand, n int, bound float64) Population {
	pop := make(Population, n)
	for i := range pop {
		pop[i] = Point{
			X: rng.Float64() * bound,
			Y: rng.Float64() * bound,
		}
	}
	return pop
}
