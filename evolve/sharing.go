package evolve

import "math"

// nicheCount returns the crowding factor beta of p against a reference set:
// the sum of (1 - d/sigma)^exponent over all reference members closer than
// sigma. When p itself is part of the reference set, its zero self-distance
// contributes exactly 1, so beta >= 1.
func nicheCount(p Point, ref Population, sigma, exponent float64) float64 {
	beta := 0.0
	for _, q := range ref {
		d := p.Dist(q)
		if d < sigma {
			beta += math.Pow(1-d/sigma, exponent)
		}
	}
	return beta
}

// sharedFitness penalizes a raw fitness value by local crowding. The penalty
// is symmetric in the sign of f: positive fitness is multiplied by beta
// (pushed up, worse under minimization), negative fitness is divided by beta
// (pulled toward zero, also worse), zero is unaffected.
func sharedFitness(f, beta float64) float64 {
	switch {
	case f > 0:
		return f * beta
	case f < 0:
		return f / beta
	default:
		return f
	}
}

// nicheCounts computes the crowding factor of every member of pts against ref.
// Each candidate is independent, so the batch fans out over worker chunks when
// parallel evaluation is enabled.
func (o *Optimizer) nicheCounts(pts, ref Population) []float64 {
	betas := make([]float64, len(pts))
	forChunks(len(pts), o.opts.Parallel, func(start, end int) {
		for i := start; i < end; i++ {
			betas[i] = nicheCount(pts[i], ref, o.params.NicheRadius, o.params.SharingExponent)
		}
	})
	return betas
}
