package objective

import (
	"math"

	"github.com/pthm-cable/petri/evolve"
)

// Eggholder is the classic demo landscape
//
//	f(x, y) = -y·sin(√|x+y|) - x·sin(√|x-y|)
//
// a rippled surface with many local minima, most interesting on a domain
// bound of a few hundred. Values are negative near the good basins.
type Eggholder struct{}

// Evaluate scores the batch.
func (Eggholder) Evaluate(pts []evolve.Point) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		sumRoot := math.Sqrt(math.Abs(p.X + p.Y))
		diffRoot := math.Sqrt(math.Abs(p.X - p.Y))
		out[i] = -p.Y*math.Sin(sumRoot) - p.X*math.Sin(diffRoot)
	}
	return out, nil
}
