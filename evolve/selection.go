package evolve

import "golang.org/x/exp/rand"

// selectParents draws 2λ tournament winners from pop, in draw order. Each
// tournament samples tournamentSize distinct indices and keeps the candidate
// with the lowest shared fitness against the whole current population; ties go
// to the first minimum in sample order. Draw order matters downstream:
// crossover pairs winners positionally.
func (o *Optimizer) selectParents(pop Population, fvals []float64) Population {
	betas := o.nicheCounts(pop, pop)
	shared := make([]float64, len(pop))
	for i := range pop {
		shared[i] = sharedFitness(fvals[i], betas[i])
	}

	parents := make(Population, 0, o.offspringCount())
	idx := make([]int, o.params.TournamentSize)
	for d := 0; d < o.offspringCount(); d++ {
		sampleDistinct(o.rng, idx, len(pop))
		best := idx[0]
		for _, j := range idx[1:] {
			if shared[j] < shared[best] {
				best = j
			}
		}
		parents = append(parents, pop[best])
	}
	return parents
}

// sampleDistinct fills out with distinct indices drawn uniformly from [0, n).
// Requires len(out) <= n, which Params.Validate guarantees for tournaments.
func sampleDistinct(rng *rand.Rand, out []int, n int) {
	for i := 0; i < len(out); {
		v := rng.Intn(n)
		dup := false
		for _, u := range out[:i] {
			if u == v {
				dup = true
				break
			}
		}
		if !dup {
			out[i] = v
			i++
		}
	}
}
