package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over [Default] and validates the result.
// Empty input yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	ev := cfg.Evaluation
	if ev.MaxSamples < 2 || ev.MaxSamples > 1000 {
		errs = append(errs, fmt.Errorf("evaluation.max_samples %d is out of range [2, 1000]", ev.MaxSamples))
	}
	if ev.MinPoints < 1 {
		errs = append(errs, fmt.Errorf("evaluation.min_points %d must be at least 1", ev.MinPoints))
	}
	if ev.Window < -1 {
		errs = append(errs, fmt.Errorf("evaluation.window %d must be -1 (unlimited) or non-negative", ev.Window))
	}
	if ev.SlopePenalty < 0 {
		errs = append(errs, fmt.Errorf("evaluation.slope_penalty %.2f must be non-negative", ev.SlopePenalty))
	}

	dir := ev.Direction
	if dir.MinPoints < 0 {
		errs = append(errs, fmt.Errorf("evaluation.direction.min_points %d must be non-negative", dir.MinPoints))
	}
	if dir.Stride < 1 {
		errs = append(errs, fmt.Errorf("evaluation.direction.stride %d must be at least 1", dir.Stride))
	}
	if dir.MinDelta < 0 {
		errs = append(errs, fmt.Errorf("evaluation.direction.min_delta %.2f must be non-negative", dir.MinDelta))
	}

	return errors.Join(errs...)
}
