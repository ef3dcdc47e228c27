package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/petri/config"
)

// BestResult is the final run outcome written alongside the CSV log.
type BestResult struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Fitness     float64 `json:"fitness"`
	Refined     bool    `json:"refined"`
	Generations int     `json:"generations"`
	Seed        int64   `json:"seed"`
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir             string
	generationsFile *os.File

	// Track if headers have been written
	generationsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	generationsPath := filepath.Join(dir, "generations.csv")
	f, err := os.Create(generationsPath)
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	om.generationsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteGeneration writes a stats record to generations.csv.
func (om *OutputManager) WriteGeneration(stats GenerationStats) error {
	if om == nil {
		return nil
	}

	records := []GenerationStats{stats}

	if !om.generationsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.generationsFile); err != nil {
			return fmt.Errorf("writing generations: %w", err)
		}
		om.generationsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.generationsFile); err != nil {
			return fmt.Errorf("writing generations: %w", err)
		}
	}

	return nil
}

// WriteBest saves the final result snapshot as JSON.
// Returns the filepath where it was saved.
func (om *OutputManager) WriteBest(best BestResult) (string, error) {
	if om == nil {
		return "", nil
	}

	path := filepath.Join(om.dir, "best.json")
	data, err := json.MarshalIndent(best, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.generationsFile.Close()
}
