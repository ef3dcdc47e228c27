package evolve

// mutationSigma is the standard deviation of the Gaussian perturbation.
const mutationSigma = 10.0

// mutate returns a copy of offspring where each individual is independently
// perturbed with probability alpha. A mutated individual gets i.i.d. Gaussian
// noise on both coordinates at once (the whole point mutates or none of it),
// then is clipped back into the domain.
func (o *Optimizer) mutate(offspring Population) Population {
	alpha := o.params.MutationProbability
	out := make(Population, len(offspring))
	copy(out, offspring)

	for i := range out {
		u := o.rng.Float64()
		if alpha == 0 || u > alpha {
			continue
		}
		out[i].X += o.noise.Rand()
		out[i].Y += o.noise.Rand()
		out[i] = out[i].Clamp(o.params.DomainBound)
	}
	return out
}
