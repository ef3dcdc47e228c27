package evolve

// blend produces one offspring from a parent pair by coordinate-wise affine
// blending: child = p1 + w*(p2-p1), clipped to the domain. Weights below 0 or
// above 1 extrapolate beyond either parent, which is what lets the search
// probe outward from the current population.
func blend(p1, p2 Point, wx, wy, bound float64) Point {
	return Point{
		X: p1.X + wx*(p2.X-p1.X),
		Y: p1.Y + wy*(p2.Y-p1.Y),
	}.Clamp(bound)
}

// crossover consumes the parent pool as consecutive non-overlapping pairs and
// blends each pair into one offspring. Each pair draws one weight vector with
// both components uniform on [-1, 2].
func (o *Optimizer) crossover(parents Population) Population {
	offspring := make(Population, len(parents)/2)
	for i := range offspring {
		wx := 3*o.rng.Float64() - 1
		wy := 3*o.rng.Float64() - 1
		offspring[i] = blend(parents[2*i], parents[2*i+1], wx, wy, o.params.DomainBound)
	}
	return offspring
}
