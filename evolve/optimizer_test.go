package evolve

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func smallRunParams(iterations int) Params {
	return Params{
		MutationProbability: 0.3,
		PopulationSize:      4,
		TournamentSize:      2,
		SharingExponent:     0.5,
		NicheRadius:         3,
		DomainBound:         10,
		Iterations:          iterations,
	}
}

func TestNewValidation(t *testing.T) {
	valid := smallRunParams(1)

	tests := []struct {
		name   string
		mutate func(*Params)
		want   string
	}{
		{"negative niche radius", func(p *Params) { p.NicheRadius = -1 }, "niche radius"},
		{"zero niche radius", func(p *Params) { p.NicheRadius = 0 }, "niche radius"},
		{"tournament larger than population", func(p *Params) { p.TournamentSize = 5 }, "tournament size"},
		{"zero tournament", func(p *Params) { p.TournamentSize = 0 }, "tournament size"},
		{"mutation probability above one", func(p *Params) { p.MutationProbability = 1.5 }, "mutation probability"},
		{"negative mutation probability", func(p *Params) { p.MutationProbability = -0.1 }, "mutation probability"},
		{"zero population", func(p *Params) { p.PopulationSize = 0 }, "population size"},
		{"zero domain bound", func(p *Params) { p.DomainBound = 0 }, "domain bound"},
		{"negative sharing exponent", func(p *Params) { p.SharingExponent = -1 }, "sharing exponent"},
		{"negative iterations", func(p *Params) { p.Iterations = -1 }, "iteration count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			_, err := New(params, sumObjective{}, Options{Seed: 1})
			if err == nil {
				t.Fatal("New accepted an invalid configuration")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	t.Run("nil objective", func(t *testing.T) {
		if _, err := New(valid, nil, Options{Seed: 1}); err == nil {
			t.Fatal("New accepted a nil objective")
		}
	})
}

func TestRunInvariants(t *testing.T) {
	const iterations = 5
	var reports int
	var statGens []int

	reporter := func(pop Population, bound float64) {
		reports++
		if len(pop) != 4 {
			t.Errorf("report %d: population size = %d, want 4", reports, len(pop))
		}
		if bound != 10 {
			t.Errorf("report %d: bound = %v, want 10", reports, bound)
		}
		for i, p := range pop {
			if p.X < 0 || p.X > bound || p.Y < 0 || p.Y > bound {
				t.Errorf("report %d: individual %d = %v escapes [0, %v]", reports, i, p, bound)
			}
		}
	}

	o, err := New(smallRunParams(iterations), sumObjective{}, Options{
		Seed:     11,
		Reporter: reporter,
		OnStats: func(s Stats) {
			statGens = append(statGens, s.Generation)
			// Best must be the minimum raw value over the reported population
			best := math.Inf(1)
			for _, p := range s.Population {
				if f := p.X + p.Y; f < best {
					best = f
				}
			}
			if math.Abs(s.BestFitness-best) > 1e-12 {
				t.Errorf("generation %d: best fitness = %v, population minimum = %v", s.Generation, s.BestFitness, best)
			}
			if s.MeanFitness < best {
				t.Errorf("generation %d: mean %v below best %v", s.Generation, s.MeanFitness, best)
			}
			if want := s.BestPoint.X + s.BestPoint.Y; math.Abs(s.BestFitness-want) > 1e-12 {
				t.Errorf("generation %d: best point %v does not score best fitness %v", s.Generation, s.BestPoint, s.BestFitness)
			}
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := o.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if reports != iterations+1 {
		t.Errorf("reporter called %d times, want %d (init + one per generation)", reports, iterations+1)
	}
	for i, g := range statGens {
		if g != i+1 {
			t.Fatalf("stats generations = %v, want 1..%d in order", statGens, iterations)
		}
	}
	if len(result.Population) != 4 {
		t.Errorf("final population size = %d, want 4", len(result.Population))
	}
	if result.Generations != iterations {
		t.Errorf("result generations = %d, want %d", result.Generations, iterations)
	}
	if result.Seed != 11 {
		t.Errorf("result seed = %d, want 11", result.Seed)
	}
}

func TestRunZeroIterations(t *testing.T) {
	var reports int
	o, err := New(smallRunParams(0), sumObjective{}, Options{
		Seed:     21,
		Reporter: func(pop Population, bound float64) { reports++ },
		OnStats:  func(Stats) { t.Error("stats emitted for a zero-iteration run") },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := o.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if reports != 1 {
		t.Errorf("reporter called %d times, want 1", reports)
	}
	if want := result.Best.X + result.Best.Y; math.Abs(result.BestFitness-want) > 1e-12 {
		t.Errorf("best fitness %v does not match best point %v", result.BestFitness, result.Best)
	}
}

// The elimination pool always contains the full parent generation and the
// first survivor slot goes to the raw-fitness best, so the best fitness can
// never worsen from one generation to the next.
func TestRunBestNeverWorsens(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		prev := math.Inf(1)
		o, err := New(smallRunParams(3), sumObjective{}, Options{
			Seed: seed,
			OnStats: func(s Stats) {
				if s.BestFitness > prev+1e-12 {
					t.Errorf("seed %d generation %d: best worsened from %v to %v",
						seed, s.Generation, prev, s.BestFitness)
				}
				prev = s.BestFitness
			},
		})
		if err != nil {
			t.Fatalf("seed %d: New: %v", seed, err)
		}
		if _, err := o.Run(); err != nil {
			t.Fatalf("seed %d: Run: %v", seed, err)
		}
	}
}

func TestRunObjectiveErrorAborts(t *testing.T) {
	boom := errors.New("landscape on fire")
	objf := ObjectiveFunc(func(pts []Point) ([]float64, error) {
		return nil, boom
	})

	o, err := New(smallRunParams(1), objf, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := o.Run(); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want the objective's error propagated", err)
	}
}

func TestRunRejectsShortObjectiveBatch(t *testing.T) {
	objf := ObjectiveFunc(func(pts []Point) ([]float64, error) {
		return make([]float64, len(pts)/2), nil
	})

	o, err := New(smallRunParams(1), objf, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := o.Run(); err == nil {
		t.Error("Run accepted an objective returning the wrong batch size")
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func() *Result {
		o, err := New(smallRunParams(4), sumObjective{}, Options{Seed: 77})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		result, err := o.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return result
	}

	a, b := run(), run()
	if a.Best != b.Best || a.BestFitness != b.BestFitness {
		t.Errorf("identical seeds diverged: %+v vs %+v", a, b)
	}
	for i := range a.Population {
		if a.Population[i] != b.Population[i] {
			t.Fatalf("final populations diverge at %d: %v vs %v", i, a.Population[i], b.Population[i])
		}
	}
}
