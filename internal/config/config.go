package config

import "github.com/pkg/errors"

// Config holds the settings of the numrand command. Flags override every field.
type Config struct {
	LogLevel string `env:"NUMRAND_LOG_LEVEL" envDefault:"info"`
	Bench    Bench
}

// Bench controls the runtime comparison of two generators.
type Bench struct {
	Repeats    int     `env:"NUMRAND_BENCH_REPEATS" envDefault:"31"`
	InnerLoops int     `env:"NUMRAND_BENCH_INNER_LOOPS" envDefault:"100000"`
	Resamples  uint64  `env:"NUMRAND_BENCH_RESAMPLES" envDefault:"10000"`
	Confidence float64 `env:"NUMRAND_BENCH_CONFIDENCE" envDefault:"0.95"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the benchmark cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Bench.Repeats < 11:
		return errors.Errorf("bench repeats must be at least 11, got %d", c.Bench.Repeats)
	case c.Bench.InnerLoops < 1:
		return errors.Errorf("bench inner loops must be positive, got %d", c.Bench.InnerLoops)
	case c.Bench.Resamples < 1:
		return errors.New("bench resamples must be positive")
	case c.Bench.Confidence <= 0 || c.Bench.Confidence > 1:
		return errors.Errorf("bench confidence must be in (0, 1], got %v", c.Bench.Confidence)
	}
	return nil
}
