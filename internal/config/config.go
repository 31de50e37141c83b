// Package config loads cubelab application settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	// Listen is the HTTP API bind address.
	Listen string `yaml:"listen"`

	// SolverURL is the base URL of the external solving service.
	SolverURL string `yaml:"solver_url"`

	// SolverTimeoutMS bounds a single solve call.
	SolverTimeoutMS int `yaml:"solver_timeout_ms"`

	// ScrambleLength is the default move count for generated scrambles.
	ScrambleLength int `yaml:"scramble_length"`

	// PlaybackIntervalMS is the autoplay step period for replay.
	PlaybackIntervalMS int `yaml:"playback_interval_ms"`

	// DBPath overrides the default solve-history database location.
	DBPath string `yaml:"db_path"`
}

// Scramble length bounds enforced at the API boundary.
const (
	MinScrambleLength = 10
	MaxScrambleLength = 30
)

// Default returns the built-in configuration.
func Default() Config {
	return defaults()
}

func defaults() Config {
	return Config{
		Listen:             ":8080",
		SolverURL:          "http://localhost:5000",
		SolverTimeoutMS:    30000,
		ScrambleLength:     20,
		PlaybackIntervalMS: 800,
	}
}

// Load reads the config at path, filling missing fields with defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Normalize fills zero values with defaults and trims whitespace.
func (c *Config) Normalize() {
	def := defaults()
	c.Listen = strings.TrimSpace(c.Listen)
	c.SolverURL = strings.TrimRight(strings.TrimSpace(c.SolverURL), "/")
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.SolverURL == "" {
		c.SolverURL = def.SolverURL
	}
	if c.SolverTimeoutMS <= 0 {
		c.SolverTimeoutMS = def.SolverTimeoutMS
	}
	if c.ScrambleLength <= 0 {
		c.ScrambleLength = def.ScrambleLength
	}
	if c.PlaybackIntervalMS <= 0 {
		c.PlaybackIntervalMS = def.PlaybackIntervalMS
	}
}

// Validate rejects settings that would misbehave at runtime.
func (c *Config) Validate() error {
	if c.ScrambleLength < MinScrambleLength || c.ScrambleLength > MaxScrambleLength {
		return fmt.Errorf("scramble_length %d outside [%d, %d]",
			c.ScrambleLength, MinScrambleLength, MaxScrambleLength)
	}
	if !strings.HasPrefix(c.SolverURL, "http://") && !strings.HasPrefix(c.SolverURL, "https://") {
		return fmt.Errorf("solver_url %q is not an http(s) URL", c.SolverURL)
	}
	return nil
}

// SolverTimeout returns the solve deadline as a duration.
func (c Config) SolverTimeout() time.Duration {
	return time.Duration(c.SolverTimeoutMS) * time.Millisecond
}

// PlaybackInterval returns the autoplay period as a duration.
func (c Config) PlaybackInterval() time.Duration {
	return time.Duration(c.PlaybackIntervalMS) * time.Millisecond
}

// ClampScrambleLength forces a requested length into the allowed range,
// substituting the configured default for non-positive requests.
func (c Config) ClampScrambleLength(n int) int {
	if n <= 0 {
		n = c.ScrambleLength
	}
	if n < MinScrambleLength {
		return MinScrambleLength
	}
	if n > MaxScrambleLength {
		return MaxScrambleLength
	}
	return n
}
