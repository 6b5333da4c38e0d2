// Package config loads runtime settings for the meshing pipeline from
// environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls meshing resolution, script evaluation and which
// structure the pipeline assembles.
type Config struct {
	MeshCells     int           `env:"LVSHELL_MESH_CELLS"     envDefault:"200"`
	EvalTimeout   time.Duration `env:"LVSHELL_EVAL_TIMEOUT"   envDefault:"5s"`
	BoundsPadding float64       `env:"LVSHELL_BOUNDS_PADDING" envDefault:"0.1"`
	Prefix        string        `env:"LVSHELL_PREFIX"         envDefault:"lv"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		MeshCells:     200,
		EvalTimeout:   5 * time.Second,
		BoundsPadding: 0.1,
		Prefix:        "lv",
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadFromEnv parses the environment into a Config and validates it.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MeshCells <= 0 {
		errs = append(errs, fmt.Errorf("LVSHELL_MESH_CELLS must be positive, got %d", c.MeshCells))
	}
	if c.EvalTimeout <= 0 {
		errs = append(errs, fmt.Errorf("LVSHELL_EVAL_TIMEOUT must be positive, got %s", c.EvalTimeout))
	}
	if c.BoundsPadding < 0 {
		errs = append(errs, fmt.Errorf("LVSHELL_BOUNDS_PADDING must not be negative, got %g", c.BoundsPadding))
	}
	if c.Prefix == "" {
		errs = append(errs, errors.New("LVSHELL_PREFIX must not be empty"))
	}
	return errors.Join(errs...)
}
