// pkg/config/config.go
package config

import (
	"fmt"
	"strings"
)

// Config is the top-level configuration structure.
type Config struct {
	App    AppConfig    `koanf:"app"`
	Log    LogConfig    `koanf:"log"`
	Solver SolverConfig `koanf:"solver"`
}

// AppConfig holds general application identity settings.
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// SolverConfig holds the runtime parameters of the optimizer driver, as
// described in the instance/solution external interface: a wall-clock time
// budget, a PRNG seed and the Pareto archive's maximum size.
type SolverConfig struct {
	TimeLimit       float64 `koanf:"time_limit"` // seconds
	Seed            int64   `koanf:"seed"`
	MaxNumSolutions int     `koanf:"max_num_solutions"`
}

// Validate checks the configuration for internally consistent values.
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if c.Solver.TimeLimit < 0 {
		errs = append(errs, "solver.time_limit must be non-negative")
	}

	// Zero is a sentinel meaning "derive 2*|V| from the instance once it is
	// known"; any other value below 2 cannot drive the epsilon-constraint
	// ladder (it needs at least two rungs) and is rejected outright.
	if c.Solver.MaxNumSolutions != 0 && c.Solver.MaxNumSolutions < 2 {
		errs = append(errs, fmt.Sprintf("solver.max_num_solutions must be 0 (instance-derived default) or at least 2, got %d", c.Solver.MaxNumSolutions))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// IsDevelopment reports whether the app is configured for development.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}
