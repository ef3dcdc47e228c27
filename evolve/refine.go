package evolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Refine polishes a candidate with a Nelder-Mead descent constrained to the
// box domain. The evolutionary loop is good at locating basins but coarse
// inside them; a short local search tightens the final answer. Returns the
// refined point and its raw objective value.
func Refine(objf Objective, start Point, bound float64) (Point, float64, error) {
	var evalErr error
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if evalErr != nil {
				return math.Inf(1)
			}
			fv, err := EvaluateOne(objf, Point{X: x[0], Y: x[1]}.Clamp(bound))
			if err != nil {
				evalErr = err
				return math.Inf(1)
			}
			return fv
		},
	}

	res, err := optimize.Minimize(problem, []float64{start.X, start.Y}, nil, &optimize.NelderMead{})
	if evalErr != nil {
		return Point{}, 0, fmt.Errorf("objective: %w", evalErr)
	}
	if err != nil {
		return Point{}, 0, fmt.Errorf("refine: %w", err)
	}

	// The simplex wanders in unclamped coordinates; re-evaluate at the
	// clamped location so the reported value matches the returned point.
	best := Point{X: res.X[0], Y: res.X[1]}.Clamp(bound)
	fv, err := EvaluateOne(objf, best)
	if err != nil {
		return Point{}, 0, fmt.Errorf("objective: %w", err)
	}
	return best, fv, nil
}
