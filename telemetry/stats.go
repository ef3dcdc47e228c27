// Package telemetry records per-generation experiment output.
package telemetry

import (
	"github.com/pthm-cable/petri/evolve"
)

// GenerationStats is one row of the per-generation experiment log.
// Fitness values are raw objective values.
type GenerationStats struct {
	Generation  int     `csv:"generation"`
	ElapsedSec  float64 `csv:"elapsed_sec"`
	MeanFitness float64 `csv:"mean_fitness"`
	BestFitness float64 `csv:"best_fitness"`
	BestX       float64 `csv:"best_x"`
	BestY       float64 `csv:"best_y"`
	Spread      float64 `csv:"spread"`
}

// FromGeneration builds a stats row from the optimizer's generation report.
func FromGeneration(s evolve.Stats) GenerationStats {
	return GenerationStats{
		Generation:  s.Generation,
		ElapsedSec:  s.Elapsed.Seconds(),
		MeanFitness: s.MeanFitness,
		BestFitness: s.BestFitness,
		BestX:       s.BestPoint.X,
		BestY:       s.BestPoint.Y,
		Spread:      Spread(s.Population),
	}
}

// Spread returns the mean pairwise distance within the population, a cheap
// diversity measure: it collapses toward zero when the population piles into
// a single basin.
func Spread(pop evolve.Population) float64 {
	n := len(pop)
	if n < 2 {
		return 0
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += pop[i].Dist(pop[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
