package evolve

// Objective scores a batch of candidate points. Lower is better; values may be
// negative. Implementations must be pure, must not retain or mutate the input
// slice, and must be defined over the whole [0, bound]² domain. Any error
// aborts the run unmodified.
type Objective interface {
	Evaluate(pts []Point) ([]float64, error)
}

// ObjectiveFunc adapts a plain function to the Objective interface.
type ObjectiveFunc func(pts []Point) ([]float64, error)

// Evaluate calls f.
func (f ObjectiveFunc) Evaluate(pts []Point) ([]float64, error) {
	return f(pts)
}

// EvaluateOne scores a single point through a batch of one.
func EvaluateOne(objf Objective, p Point) (float64, error) {
	fvals, err := objf.Evaluate([]Point{p})
	if err != nil {
		return 0, err
	}
	return fvals[0], nil
}
