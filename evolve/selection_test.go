package evolve

import (
	"testing"

	"golang.org/x/exp/rand"
)

// sumObjective scores a point by x + y. Pure minimization with its unique
// minimum at the origin.
type sumObjective struct{}

func (sumObjective) Evaluate(pts []Point) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.X + p.Y
	}
	return out, nil
}

func newTestOptimizer(t *testing.T, params Params, seed int64) *Optimizer {
	t.Helper()
	o, err := New(params, sumObjective{}, Options{Seed: seed})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return o
}

func TestSelectParentsPoolSize(t *testing.T) {
	params := Params{
		MutationProbability: 0.05,
		PopulationSize:      10,
		TournamentSize:      3,
		SharingExponent:     0.5,
		NicheRadius:         5,
		DomainBound:         100,
		Iterations:          1,
	}
	o := newTestOptimizer(t, params, 7)

	pop := NewRandomPopulation(o.rng, 10, 100)
	fvals, err := o.evaluate(pop)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	parents := o.selectParents(pop, fvals)
	if len(parents) != 20 {
		t.Fatalf("parent pool size = %d, want 20", len(parents))
	}

	// Every winner must be a member of the population
	for i, p := range parents {
		found := false
		for _, q := range pop {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("parent %d = %v is not a population member", i, p)
		}
	}
}

// With tournament size equal to the population, every draw sees everyone and
// the winner is always the individual with the lowest shared fitness. A tiny
// niche radius makes shared fitness equal raw fitness, so the winner is the
// raw best every time.
func TestSelectParentsFullTournament(t *testing.T) {
	params := Params{
		MutationProbability: 0.05,
		PopulationSize:      5,
		TournamentSize:      5,
		SharingExponent:     0.5,
		NicheRadius:         1e-9,
		DomainBound:         100,
		Iterations:          1,
	}
	o := newTestOptimizer(t, params, 3)

	pop := Population{{50, 50}, {10, 10}, {1, 2}, {80, 0}, {30, 60}}
	fvals, err := o.evaluate(pop)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	parents := o.selectParents(pop, fvals)
	want := Point{1, 2}
	for i, p := range parents {
		if p != want {
			t.Errorf("parent %d = %v, want %v", i, p, want)
		}
	}
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	t.Run("full permutation", func(t *testing.T) {
		out := make([]int, 5)
		sampleDistinct(rng, out, 5)
		seen := make(map[int]bool)
		for _, v := range out {
			if v < 0 || v >= 5 {
				t.Fatalf("index %d out of range", v)
			}
			if seen[v] {
				t.Fatalf("duplicate index %d", v)
			}
			seen[v] = true
		}
	})

	t.Run("partial sample", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			out := make([]int, 3)
			sampleDistinct(rng, out, 10)
			if out[0] == out[1] || out[0] == out[2] || out[1] == out[2] {
				t.Fatalf("duplicate in sample %v", out)
			}
			for _, v := range out {
				if v < 0 || v >= 10 {
					t.Fatalf("index %d out of range", v)
				}
			}
		}
	})
}
