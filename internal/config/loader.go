package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a YAML config file. A missing file yields the
// defaults; an unreadable or invalid file is an error — misconfigurations
// fail here, at startup, never at animation time.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
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

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. Useful in tests where configs are constructed from
// string literals.
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

// Validate checks that cfg contains a coherent set of values. It returns a
// joined error listing all failures found.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.Breath.Validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.TargetFPS < 1 || cfg.TargetFPS > 120 {
		errs = append(errs, fmt.Errorf("config: target_fps %d out of range [1, 120]", cfg.TargetFPS))
	}
	if cfg.WindowSize < 10 || cfg.WindowSize > 1000 {
		errs = append(errs, fmt.Errorf("config: window_size %d out of range [10, 1000]", cfg.WindowSize))
	}

	cl := cfg.Classifier
	if cl.HighDowngradeFPS <= 0 || cl.MediumDowngradeFPS <= 0 {
		errs = append(errs, errors.New("config: downgrade thresholds must be positive"))
	}
	// The dead bands are what prevent tier oscillation; a config that
	// collapses them is rejected outright.
	if cl.MediumUpgradeFPS <= cl.HighDowngradeFPS {
		errs = append(errs, fmt.Errorf("config: medium_upgrade_fps %v must be above high_downgrade_fps %v",
			cl.MediumUpgradeFPS, cl.HighDowngradeFPS))
	}
	if cl.LowUpgradeFPS <= cl.MediumDowngradeFPS {
		errs = append(errs, fmt.Errorf("config: low_upgrade_fps %v must be above medium_downgrade_fps %v",
			cl.LowUpgradeFPS, cl.MediumDowngradeFPS))
	}
	if cl.CommitAfterMs <= 0 {
		errs = append(errs, errors.New("config: commit_after_ms must be positive"))
	}
	if cl.MinSamples < 0 {
		errs = append(errs, errors.New("config: min_samples must not be negative"))
	}

	if cfg.Presence.Baseline < 0 || cfg.Presence.Jitter < 0 {
		errs = append(errs, errors.New("config: presence baseline and jitter must not be negative"))
	}

	return errors.Join(errs...)
}
