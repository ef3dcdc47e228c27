// petri runs a niching evolutionary optimizer over a bounded 2-D landscape.
//
// Usage: go run . [-config cfg.yaml] [-view] [-output dir] [-refine]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/evolve"
	"github.com/pthm-cable/petri/objective"
	"github.com/pthm-cable/petri/telemetry"
	"github.com/pthm-cable/petri/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output", "", "Output directory for CSV logs and result snapshot")
	view := flag.Bool("view", false, "Show the population on the landscape while running")
	refine := flag.Bool("refine", false, "Polish the best point with a local descent after the run")
	objName := flag.String("objective", "", "Objective function: eggholder or simplex (empty = use config)")
	parallel := flag.Bool("parallel", false, "Evaluate fitness batches over worker chunks")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *objName != "" {
		cfg.Objective.Name = *objName
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid objective override", "error", err)
			os.Exit(1)
		}
	}

	objf := buildObjective(cfg)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	var reporter evolve.Reporter
	if *view {
		vw, vErr := viewer.New(cfg.Viewer, objf, cfg.Evolve.DomainBound)
		if vErr != nil {
			slog.Error("failed to open viewer", "error", vErr)
			os.Exit(1)
		}
		defer vw.Close()
		reporter = vw.Report
	}

	opt, err := evolve.New(cfg.Params(), objf, evolve.Options{
		Seed:     rngSeed,
		Reporter: reporter,
		Parallel: *parallel,
		OnStats: func(s evolve.Stats) {
			fmt.Printf("%6.2fs:\t Mean fitness = %10.5f \t Best fitness = %10.5f\n",
				s.Elapsed.Seconds(), s.MeanFitness, s.BestFitness)
			if wErr := om.WriteGeneration(telemetry.FromGeneration(s)); wErr != nil {
				slog.Error("failed to write generation stats", "error", wErr)
			}
		},
	})
	if err != nil {
		slog.Error("failed to build optimizer", "error", err)
		os.Exit(1)
	}

	slog.Info("starting run",
		"objective", cfg.Objective.Name,
		"seed", rngSeed,
		"population", cfg.Evolve.PopulationSize,
		"iterations", cfg.Evolve.Iterations,
		"parallel", *parallel,
	)

	result, err := opt.Run()
	if err != nil {
		slog.Error("run aborted", "error", err)
		os.Exit(1)
	}
	fmt.Println("Done")

	best := result.Best
	bestFitness := result.BestFitness
	refined := false
	if *refine {
		pt, f, rErr := evolve.Refine(objf, best, cfg.Evolve.DomainBound)
		if rErr != nil {
			slog.Error("refinement failed", "error", rErr)
			os.Exit(1)
		}
		if f < bestFitness {
			best, bestFitness, refined = pt, f, true
		}
	}

	slog.Info("run complete",
		"best_x", best.X,
		"best_y", best.Y,
		"best_fitness", bestFitness,
		"refined", refined,
	)

	if _, err := om.WriteBest(telemetry.BestResult{
		X:           best.X,
		Y:           best.Y,
		Fitness:     bestFitness,
		Refined:     refined,
		Generations: result.Generations,
		Seed:        result.Seed,
	}); err != nil {
		slog.Error("failed to write result snapshot", "error", err)
		os.Exit(1)
	}
}

// buildObjective constructs the configured demonstration landscape.
func buildObjective(cfg *config.Config) evolve.Objective {
	switch cfg.Objective.Name {
	case "simplex":
		sp := cfg.Objective.Simplex
		return objective.NewSimplex(objective.SimplexParams{
			Seed:       sp.Seed,
			Octaves:    sp.Octaves,
			Scale:      sp.Scale,
			Lacunarity: sp.Lacunarity,
			Gain:       sp.Gain,
			Amplitude:  sp.Amplitude,
		}, cfg.Evolve.DomainBound)
	default:
		return objective.Eggholder{}
	}
}
