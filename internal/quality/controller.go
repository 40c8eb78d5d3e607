package quality

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"stillwave.dev/internal/perf"
	"stillwave.dev/internal/store"
)

// PresetKey is the preference-store key holding the persisted preset.
const PresetKey = "quality-preset"

// PerformanceState is the snapshot published once per classification cycle.
type PerformanceState struct {
	AvgFPS     float64
	Score      float64 // [0, 1], display-only
	Level      Level
	Throttling bool
}

// Controller is the composition root for adaptive quality: it owns the
// sampler and classifier, the user's persisted preset, and the snapshot
// consumers read. Exactly one goroutine (the frame loop) writes to it.
type Controller struct {
	sampler    *perf.Sampler
	classifier *Classifier
	prefs      store.Store
	log        zerolog.Logger

	preset  Preset
	metrics *PerformanceState
}

// NewController builds a controller, restoring the persisted preset when one
// exists. An unreadable or unknown stored value falls back to auto.
func NewController(sampler *perf.Sampler, classifier *Classifier, prefs store.Store, log zerolog.Logger) *Controller {
	c := &Controller{
		sampler:    sampler,
		classifier: classifier,
		prefs:      prefs,
		log:        log,
		preset:     PresetAuto,
	}
	if raw, ok := prefs.Get(PresetKey); ok {
		if p, err := ParsePreset(raw); err == nil {
			c.preset = p
		} else {
			log.Warn().Str("value", raw).Msg("ignoring unknown stored quality preset")
		}
	}
	return c
}

// Preset returns the user-selected quality mode.
func (c *Controller) Preset() Preset {
	return c.preset
}

// SetPreset applies a preset synchronously and persists it best-effort. A
// persistence failure is logged and ignored; the in-memory value stays
// authoritative for the session.
func (c *Controller) SetPreset(p Preset) error {
	if !p.Valid() {
		return fmt.Errorf("quality: invalid preset %q", p)
	}
	c.preset = p
	c.log.Info().Str("preset", string(p)).Msg("quality preset changed")
	if err := c.prefs.Set(PresetKey, string(p)); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist quality preset")
	}
	return nil
}

// RecordSample drives one frame's sampling and classification, then
// republishes the performance snapshot. The sample is recorded before the
// classification runs, so the level observed this frame reflects every
// sample up to and including this frame.
func (c *Controller) RecordSample(deltaMs float64, now time.Time) {
	c.sampler.Sample(deltaMs)

	fps := c.sampler.SmoothedFPS()
	level := c.classifier.Classify(fps, c.sampler.Len(), now)

	c.metrics = &PerformanceState{
		AvgFPS:     fps,
		Score:      c.sampler.NormalizedScore(),
		Level:      level,
		Throttling: c.classifier.Throttling(),
	}
}

// Metrics returns the latest snapshot, or nil before the first
// classification cycle.
func (c *Controller) Metrics() *PerformanceState {
	return c.metrics
}

// EffectiveLevel is the level consumers render at: an explicit preset wins
// outright, otherwise the classifier's committed level, defaulting to
// medium while uninitialized.
func (c *Controller) EffectiveLevel() Level {
	if l, ok := c.preset.Level(); ok {
		return l
	}
	if c.metrics != nil {
		return c.metrics.Level
	}
	return LevelMedium
}

// Settings returns the rendering budgets for the effective level.
func (c *Controller) Settings() Settings {
	return SettingsFor(c.EffectiveLevel())
}
