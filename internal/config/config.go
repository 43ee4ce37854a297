package config

import (
	"os"
	"strconv"
	"strings"

	"distkit/internal/errors"
)

// Config represents the complete engine configuration
type Config struct {
	Curve CurveConfig
	Sweep SweepConfig
}

// CurveConfig holds curve-generation defaults
type CurveConfig struct {
	GridSize           int       // points on an auto-built x-grid
	PrimaryPercentile  float64   // percentile treated as the central estimate
	DefaultPercentiles []float64 // percentiles plotted when the caller names none
}

// SweepConfig holds batch-generation settings
type SweepConfig struct {
	Parallelism int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Curve: CurveConfig{
			GridSize:           getEnvIntOrDefault("DISTKIT_GRID_SIZE", 100),
			PrimaryPercentile:  getEnvFloatOrDefault("DISTKIT_PRIMARY_PERCENTILE", 50),
			DefaultPercentiles: getEnvFloatsOrDefault("DISTKIT_PERCENTILES", []float64{10, 25, 50, 75, 90}),
		},
		Sweep: SweepConfig{
			Parallelism: getEnvIntOrDefault("DISTKIT_SWEEP_PARALLELISM", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(c *Config) error {
	if c.Curve.GridSize < 2 {
		return errors.ConfigInvalid("DISTKIT_GRID_SIZE must be at least 2")
	}
	if c.Curve.PrimaryPercentile <= 0 || c.Curve.PrimaryPercentile >= 100 {
		return errors.ConfigInvalid("DISTKIT_PRIMARY_PERCENTILE must be in (0, 100)")
	}
	for _, p := range c.Curve.DefaultPercentiles {
		if p <= 0 || p >= 100 {
			return errors.ConfigInvalid("DISTKIT_PERCENTILES entries must be in (0, 100)")
		}
	}
	if c.Sweep.Parallelism < 1 {
		return errors.ConfigInvalid("DISTKIT_SWEEP_PARALLELISM must be at least 1")
	}
	return nil
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloatOrDefault(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloatsOrDefault(key string, def []float64) []float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []float64
	for _, part := range strings.Split(v, ",") {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return def
		}
		out = append(out, parsed)
	}
	return out
}
