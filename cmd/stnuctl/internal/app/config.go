package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the override knobs stnuctl accepts either as flags or via
// --config (spec.md SPEC_FULL §9.4).
type Config struct {
	Trials        int           `yaml:"trials"`
	Seed          int64         `yaml:"seed"`
	SigmaK        float64       `yaml:"sigma-k"`
	SolverTimeout time.Duration `yaml:"solver-timeout"`
}

// DefaultConfig matches the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{Trials: 1000, Seed: 1, SigmaK: 1.5, SolverTimeout: 50 * time.Second}
}

// LoadConfig reads a YAML config file, overlaying its fields onto base.
// A missing path is not an error: the caller passes "" to skip loading.
func LoadConfig(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, err
	}
	return base, nil
}
