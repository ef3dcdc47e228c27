// Package config provides configuration loading and access for optimizer runs.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/petri/evolve"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration parameters.
type Config struct {
	Evolve    EvolveConfig    `yaml:"evolve"`
	Objective ObjectiveConfig `yaml:"objective"`
	Viewer    ViewerConfig    `yaml:"viewer"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// EvolveConfig holds the evolutionary loop parameters.
type EvolveConfig struct {
	MutationProbability float64 `yaml:"mutation_probability"` // Chance an offspring is perturbed
	PopulationSize      int     `yaml:"population_size"`      // λ; parent pool is 2λ per generation
	TournamentSize      int     `yaml:"tournament_size"`      // Candidates per selection tournament
	SharingExponent     float64 `yaml:"sharing_exponent"`     // Crowding kernel shape
	NicheRadius         float64 `yaml:"niche_radius"`         // 0 = 0.3 * domain_bound
	DomainBound         float64 `yaml:"domain_bound"`         // Search domain is [0, bound]²
	Iterations          int     `yaml:"iterations"`           // Generations per run
}

// ObjectiveConfig selects and shapes the demonstration objective.
type ObjectiveConfig struct {
	Name    string        `yaml:"name"` // eggholder or simplex
	Simplex SimplexConfig `yaml:"simplex"`
}

// SimplexConfig holds the procedural landscape parameters.
type SimplexConfig struct {
	Seed       int64   `yaml:"seed"`
	Octaves    int     `yaml:"octaves"`    // FBM octaves (detail level)
	Scale      float64 `yaml:"scale"`      // Base noise frequency
	Lacunarity float64 `yaml:"lacunarity"` // Frequency multiplier per octave
	Gain       float64 `yaml:"gain"`       // Amplitude multiplier per octave
	Amplitude  float64 `yaml:"amplitude"`  // Output range is roughly ±amplitude
}

// ViewerConfig holds live plot settings.
type ViewerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	GridSize  int `yaml:"grid_size"` // Landscape raster resolution
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	NicheRadius float64 // Resolved niche radius (default applied)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. Invalid configurations
// fail here; a run never starts on bad parameters.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.NicheRadius = c.Evolve.NicheRadius
	if c.Derived.NicheRadius == 0 {
		c.Derived.NicheRadius = 0.3 * c.Evolve.DomainBound
	}
}

// Validate checks the loaded configuration against the constraints of the
// optimizer and the objective selector.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	switch c.Objective.Name {
	case "eggholder", "simplex":
	default:
		return fmt.Errorf("unknown objective %q", c.Objective.Name)
	}
	if c.Viewer.GridSize < 2 {
		return fmt.Errorf("viewer grid size %d must be at least 2", c.Viewer.GridSize)
	}
	return nil
}

// Params converts the evolve section into optimizer parameters, with the
// derived niche radius applied.
func (c *Config) Params() evolve.Params {
	return evolve.Params{
		MutationProbability: c.Evolve.MutationProbability,
		PopulationSize:      c.Evolve.PopulationSize,
		TournamentSize:      c.Evolve.TournamentSize,
		SharingExponent:     c.Evolve.SharingExponent,
		NicheRadius:         c.Derived.NicheRadius,
		DomainBound:         c.Evolve.DomainBound,
		Iterations:          c.Evolve.Iterations,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
