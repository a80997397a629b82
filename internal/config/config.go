// Package config loads CLI defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/wigner/internal/render"
	"github.com/katalvlaran/wigner/racah"
)

// ErrInvalidConfig marks a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI defaults. Command-line flags override every field.
type Config struct {
	Epsilon  float64 `env:"WIGNER_EPS"       envDefault:"1e-9"`
	Method   string  `env:"WIGNER_METHOD"    envDefault:"exact"`
	Output   string  `env:"WIGNER_OUTPUT"    envDefault:"text"`
	LogMode  string  `env:"WIGNER_LOG_MODE"  envDefault:"dev"`
	LogLevel string  `env:"WIGNER_LOG_LEVEL" envDefault:"warn"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Options validates the settings and converts the numeric ones to evaluator
// options. The output format is checked here too, before anything is evaluated. Unlike racah.WithEpsilon it reports bad input as an error,
// since the values come from the user rather than from code.
func (c Config) Options() ([]racah.Option, error) {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return nil, fmt.Errorf("%w: eps %v must be finite and non-negative", ErrInvalidConfig, c.Epsilon)
	}
	m, err := racah.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := render.CheckFormat(c.Output); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []racah.Option{racah.WithEpsilon(c.Epsilon), racah.WithMethod(m)}, nil
}
