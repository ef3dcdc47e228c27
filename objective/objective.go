// Package objective provides demonstration landscapes for the optimizer.
// All of them implement evolve.Objective: batch evaluation, minimization
// convention, defined over the whole [0, bound]² domain.
package objective

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/petri/evolve"
)

// GridMin scans a steps×steps raster of the landscape and returns the best
// cell center with its value. This is an approximation for display purposes,
// not an optimizer.
func GridMin(objf evolve.Objective, bound float64, steps int) (evolve.Point, float64, error) {
	if steps < 2 {
		return evolve.Point{}, 0, fmt.Errorf("grid steps %d must be at least 2", steps)
	}

	pts := make([]evolve.Point, 0, steps*steps)
	cell := bound / float64(steps)
	for iy := 0; iy < steps; iy++ {
		for ix := 0; ix < steps; ix++ {
			pts = append(pts, evolve.Point{
				X: (float64(ix) + 0.5) * cell,
				Y: (float64(iy) + 0.5) * cell,
			})
		}
	}

	fvals, err := objf.Evaluate(pts)
	if err != nil {
		return evolve.Point{}, 0, err
	}
	best := floats.MinIdx(fvals)
	return pts[best], fvals[best], nil
}
