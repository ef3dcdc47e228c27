package evolve

// eliminate reduces a pool of candidates to keep survivors, spreading them
// across niches. The first survivor is the best raw fitness in the pool. Every
// later slot rescores the remaining candidates by shared fitness against the
// candidate itself plus the survivors committed so far, and takes the minimum;
// crowding next to an accepted survivor is penalized even when the raw
// objective value is excellent. Ties go to the first minimum in pool order.
//
// Returns the survivors along with their raw fitness values, which are a
// subset of the pool evaluations (the objective is pure, so no re-evaluation
// is needed).
func (o *Optimizer) eliminate(pool Population, keep int) (Population, []float64, error) {
	fvals, err := o.evaluate(pool)
	if err != nil {
		return nil, nil, err
	}

	// Indices into pool still up for selection; removal preserves pool order
	// so tie-breaks stay deterministic.
	remaining := make([]int, len(pool))
	for i := range remaining {
		remaining[i] = i
	}

	survivors := make(Population, 0, keep)
	survFvals := make([]float64, 0, keep)

	// First survivor: raw fitness only. This bootstraps the niche; diversity
	// pressure starts from the second slot.
	best := 0
	for j, idx := range remaining {
		if fvals[idx] < fvals[remaining[best]] {
			best = j
		}
	}

	shared := make([]float64, len(pool))
	for len(survivors) < keep {
		idx := remaining[best]
		survivors = append(survivors, pool[idx])
		survFvals = append(survFvals, fvals[idx])
		remaining = append(remaining[:best], remaining[best+1:]...)

		if len(survivors) == keep {
			break
		}

		// Rescore what is left against the committed survivor list. The
		// candidate sees only itself (self term, beta contribution 1) and the
		// survivors; the rest of the pool does not count as crowding.
		forChunks(len(remaining), o.opts.Parallel, func(start, end int) {
			for j := start; j < end; j++ {
				idx := remaining[j]
				beta := 1 + nicheCount(pool[idx], survivors, o.params.NicheRadius, o.params.SharingExponent)
				shared[j] = sharedFitness(fvals[idx], beta)
			}
		})

		best = 0
		for j := range remaining {
			if shared[j] < shared[best] {
				best = j
			}
		}
	}

	return survivors, survFvals, nil
}
