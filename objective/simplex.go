package objective

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/petri/evolve"
)

// SimplexParams shapes the procedural landscape.
type SimplexParams struct {
	Seed       int64
	Octaves    int     // FBM octaves (detail level)
	Scale      float64 // Base noise frequency across the domain
	Lacunarity float64 // Frequency multiplier per octave
	Gain       float64 // Amplitude multiplier per octave
	Amplitude  float64 // Output range is roughly ±Amplitude
}

// DefaultSimplexParams is a moderately rugged surface.
func DefaultSimplexParams() SimplexParams {
	return SimplexParams{
		Seed:       12345,
		Octaves:    4,
		Scale:      3.0,
		Lacunarity: 2.0,
		Gain:       0.5,
		Amplitude:  100.0,
	}
}

// Simplex is a seedable fractal-noise landscape: summed opensimplex octaves
// scaled to the domain. Its many shallow basins make it a good stress test
// for niching, since no single basin dominates the way an analytic benchmark
// does.
type Simplex struct {
	noise  opensimplex.Noise
	bound  float64
	params SimplexParams
}

// NewSimplex builds a landscape over [0, bound]².
func NewSimplex(params SimplexParams, bound float64) *Simplex {
	if params.Octaves < 1 {
		params.Octaves = 1
	}
	return &Simplex{
		noise:  opensimplex.New(params.Seed),
		bound:  bound,
		params: params,
	}
}

// Evaluate scores the batch.
func (s *Simplex) Evaluate(pts []evolve.Point) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		u := p.X / s.bound
		v := p.Y / s.bound

		sum := 0.0
		amp := 0.5
		freq := s.params.Scale
		for o := 0; o < s.params.Octaves; o++ {
			sum += amp * s.noise.Eval2(u*freq, v*freq)
			freq *= s.params.Lacunarity
			amp *= s.params.Gain
		}
		out[i] = sum * s.params.Amplitude
	}
	return out, nil
}
