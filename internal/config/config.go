// Package config provides the configuration schema, loader, and defaults
// for the Stillwave visualization.
package config

import (
	"time"

	"stillwave.dev/internal/breath"
)

const (
	// App
	AppName    = "STILLWAVE"
	AppVersion = "1.0"

	// Display
	AspectRatio = 0.5 // terminal chars are ~2:1 tall

	// Sampling
	TargetFPS  = 30 // frames per second the tick loop aims for
	WindowSize = 90 // rolling frame-time window (~3s at target)

	// Presence simulation
	PresenceBaseline = 140             // fake "people breathing" center value
	PresenceInterval = 4 * time.Second // how often the count drifts
)

// Config is the root configuration, typically loaded from a YAML file with
// [Load]. Zero values are filled from [Default] before validation.
type Config struct {
	Breath     breath.PhaseConfig `yaml:"breath"`
	Classifier ClassifierConfig   `yaml:"classifier"`
	TargetFPS  int                `yaml:"target_fps"`
	WindowSize int                `yaml:"window_size"`
	Presence   PresenceConfig     `yaml:"presence"`
	LogFile    string             `yaml:"log_file"`
}

// ClassifierConfig holds the adaptive-quality hysteresis settings.
type ClassifierConfig struct {
	HighDowngradeFPS   float64 `yaml:"high_downgrade_fps"`
	MediumUpgradeFPS   float64 `yaml:"medium_upgrade_fps"`
	MediumDowngradeFPS float64 `yaml:"medium_downgrade_fps"`
	LowUpgradeFPS      float64 `yaml:"low_upgrade_fps"`
	CommitAfterMs      int     `yaml:"commit_after_ms"`
	MinSamples         int     `yaml:"min_samples"`
}

// PresenceConfig tunes the simulated presence counter.
type PresenceConfig struct {
	Enabled  bool `yaml:"enabled"`
	Baseline int  `yaml:"baseline"`
	Jitter   int  `yaml:"jitter"`
}

// Default returns the stock configuration used when no file is given.
func Default() *Config {
	return &Config{
		Breath: breath.DefaultPhaseConfig(),
		Classifier: ClassifierConfig{
			HighDowngradeFPS:   45,
			MediumUpgradeFPS:   52,
			MediumDowngradeFPS: 24,
			LowUpgradeFPS:      30,
			CommitAfterMs:      2500,
			MinSamples:         30,
		},
		TargetFPS:  TargetFPS,
		WindowSize: WindowSize,
		Presence: PresenceConfig{
			Enabled:  true,
			Baseline: PresenceBaseline,
			Jitter:   12,
		},
	}
}

// CommitAfter returns the classifier debounce as a duration.
func (c ClassifierConfig) CommitAfter() time.Duration {
	return time.Duration(c.CommitAfterMs) * time.Millisecond
}
