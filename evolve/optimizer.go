package evolve

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Params holds the run parameters. All values are fixed for the lifetime of
// one run; there is no runtime reconfiguration.
type Params struct {
	MutationProbability float64 // Chance an offspring is perturbed
	PopulationSize      int     // λ; the parent pool is 2λ
	TournamentSize      int     // Candidates per selection tournament
	SharingExponent     float64 // Shape of the crowding kernel
	NicheRadius         float64 // Distance beyond which candidates do not crowd each other
	DomainBound         float64 // Search domain is [0, DomainBound]²
	Iterations          int     // Generations to run; the sole termination criterion
}

// Validate rejects parameter sets that cannot produce a well-defined run.
func (p Params) Validate() error {
	if p.MutationProbability < 0 || p.MutationProbability > 1 {
		return fmt.Errorf("mutation probability %v outside [0, 1]", p.MutationProbability)
	}
	if p.PopulationSize < 1 {
		return fmt.Errorf("population size %d must be positive", p.PopulationSize)
	}
	if p.TournamentSize < 1 || p.TournamentSize > p.PopulationSize {
		return fmt.Errorf("tournament size %d outside [1, %d]", p.TournamentSize, p.PopulationSize)
	}
	if p.SharingExponent < 0 {
		return fmt.Errorf("sharing exponent %v must be non-negative", p.SharingExponent)
	}
	if p.NicheRadius <= 0 {
		return fmt.Errorf("niche radius %v must be positive", p.NicheRadius)
	}
	if p.DomainBound <= 0 {
		return fmt.Errorf("domain bound %v must be positive", p.DomainBound)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("iteration count %d must be non-negative", p.Iterations)
	}
	return nil
}

// Reporter observes the population once before the first generation and once
// after every generation. It is called synchronously and must not retain or
// mutate the slice it is given.
type Reporter func(pop Population, bound float64)

// Stats summarizes one completed generation. Fitness values are raw objective
// values; shared fitness is internal to selection and never reported.
type Stats struct {
	Generation  int // 1-based
	Elapsed     time.Duration
	MeanFitness float64
	BestFitness float64
	BestPoint   Point
	Population  Population // read-only view; valid only during the callback
}

// Options configures optional optimizer behavior.
type Options struct {
	Seed     int64       // RNG seed; 0 = time-based
	Reporter Reporter    // Population hook; nil = disabled
	OnStats  func(Stats) // Per-generation statistics sink; nil = disabled
	Parallel bool        // Fan fitness batches out over worker chunks
}

// Result is the outcome of a full run.
type Result struct {
	Best        Point
	BestFitness float64
	Population  Population
	Generations int
	Seed        int64
}

// Optimizer runs the evolutionary loop. One generation is
// select → crossover → mutate → union with parents → eliminate back to λ.
type Optimizer struct {
	params Params
	objf   Objective
	opts   Options
	rng    *rand.Rand
	noise  distuv.Normal
}

// New builds an optimizer. Params are validated here; a bad configuration
// never produces a partial run.
func New(params Params, objf Objective, opts Options) (*Optimizer, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if objf == nil {
		return nil, fmt.Errorf("nil objective")
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	src := rand.NewSource(uint64(opts.Seed))
	return &Optimizer{
		params: params,
		objf:   objf,
		opts:   opts,
		rng:    rand.New(src),
		noise:  distuv.Normal{Mu: 0, Sigma: mutationSigma, Src: src},
	}, nil
}

// Seed returns the effective RNG seed of this run.
func (o *Optimizer) Seed() int64 { return o.opts.Seed }

// offspringCount is the parent pool size: two parents per offspring.
func (o *Optimizer) offspringCount() int { return 2 * o.params.PopulationSize }

// evaluate scores a batch through the objective, checking the contract.
func (o *Optimizer) evaluate(pts Population) ([]float64, error) {
	fvals, err := o.objf.Evaluate(pts)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	if len(fvals) != len(pts) {
		return nil, fmt.Errorf("objective returned %d values for %d points", len(fvals), len(pts))
	}
	return fvals, nil
}

// Run executes the configured number of generations and returns the best
// individual of the final population. Any objective error aborts the run;
// there is no retry and no substitution of default fitness.
func (o *Optimizer) Run() (*Result, error) {
	lambda := o.params.PopulationSize
	pop := NewRandomPopulation(o.rng, lambda, o.params.DomainBound)
	o.report(pop)

	fvals, err := o.evaluate(pop)
	if err != nil {
		return nil, err
	}

	for gen := 1; gen <= o.params.Iterations; gen++ {
		start := time.Now()

		parents := o.selectParents(pop, fvals)
		offspring := o.mutate(o.crossover(parents))

		// Union of mutated offspring and the full parent generation,
		// offspring first. A fresh slice: the consumed population must not
		// alias the survivors produced from it.
		pool := make(Population, 0, len(offspring)+len(pop))
		pool = append(pool, offspring...)
		pool = append(pool, pop...)

		pop, fvals, err = o.eliminate(pool, lambda)
		if err != nil {
			return nil, err
		}

		elapsed := time.Since(start)
		o.emitStats(gen, elapsed, pop, fvals)
		o.report(pop)
	}

	bestIdx := floats.MinIdx(fvals)
	return &Result{
		Best:        pop[bestIdx],
		BestFitness: fvals[bestIdx],
		Population:  pop,
		Generations: o.params.Iterations,
		Seed:        o.opts.Seed,
	}, nil
}

func (o *Optimizer) report(pop Population) {
	if o.opts.Reporter != nil {
		o.opts.Reporter(pop, o.params.DomainBound)
	}
}

func (o *Optimizer) emitStats(gen int, elapsed time.Duration, pop Population, fvals []float64) {
	if o.opts.OnStats == nil {
		return
	}
	bestIdx := floats.MinIdx(fvals)
	o.opts.OnStats(Stats{
		Generation:  gen,
		Elapsed:     elapsed,
		MeanFitness: stat.Mean(fvals, nil),
		BestFitness: fvals[bestIdx],
		BestPoint:   pop[bestIdx],
		Population:  pop,
	})
}
