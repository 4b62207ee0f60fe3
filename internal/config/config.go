// Package config loads the YAML configuration the ratiocycle demo command
// reads at startup: where the graph-problem file lives, how the solver
// should be bounded, and how logging/metrics should behave.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Problem ProblemConfig `yaml:"problem"`
	Solver  SolverConfig  `yaml:"solver"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProblemConfig names the graph-problem file to load and which variant of
// the ratio to compute.
type ProblemConfig struct {
	Path      string `yaml:"path"`
	Objective string `yaml:"objective"` // "min" or "max"
}

// SolverConfig bounds the solver's outer and inner iteration budgets.
type SolverConfig struct {
	MaxOuterIterations int     `yaml:"max_outer_iterations"` // 0 = unbounded
	MaxRelaxIterations int     `yaml:"max_relax_iterations"` // 0 = unbounded
	InitialRatio       float64 `yaml:"initial_ratio"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.setDefaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) > 0 {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Problem = ProblemConfig{
		Path:      "testdata/problem.yaml",
		Objective: "min",
	}
	c.Solver = SolverConfig{
		MaxOuterIterations: 0,
		MaxRelaxIterations: 0,
		InitialRatio:       0,
	}
	c.Metrics = MetricsConfig{
		Enabled: true,
		Port:    8080,
		Path:    "/metrics",
	}
	c.Logging = LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RATIOCYCLE_PROBLEM_PATH"); v != "" {
		c.Problem.Path = v
	}
	if v := os.Getenv("RATIOCYCLE_OBJECTIVE"); v != "" {
		c.Problem.Objective = strings.ToLower(v)
	}
	if v := os.Getenv("RATIOCYCLE_METRICS_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Metrics.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

func (c *Config) validate() error {
	if c.Problem.Path == "" {
		return fmt.Errorf("problem.path is required")
	}
	if c.Problem.Objective != "min" && c.Problem.Objective != "max" {
		return fmt.Errorf("problem.objective must be \"min\" or \"max\", got %q", c.Problem.Objective)
	}
	if c.Solver.MaxOuterIterations < 0 {
		return fmt.Errorf("solver.max_outer_iterations must not be negative")
	}
	if c.Solver.MaxRelaxIterations < 0 {
		return fmt.Errorf("solver.max_relax_iterations must not be negative")
	}
	if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be a valid port number")
	}
	return nil
}
