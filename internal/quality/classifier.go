package quality

import "time"

// Thresholds holds the hysteresis boundaries and debounce timing for the
// classifier. Each upgrade threshold sits strictly above the downgrade
// threshold of the level it leads to, leaving a dead band that keeps the
// level stable while fps hovers near a boundary.
type Thresholds struct {
	HighDowngradeFPS   float64       // below this, high is no longer acceptable
	MediumUpgradeFPS   float64       // above this, medium may become high
	MediumDowngradeFPS float64       // below this, medium is no longer acceptable
	LowUpgradeFPS      float64       // above this, low may become medium
	CommitAfter        time.Duration // sustained indication before a transition applies
	MinSamples         int           // startup guard: hold the initial level until warm
}

// DefaultThresholds returns the stock hysteresis configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighDowngradeFPS:   45,
		MediumUpgradeFPS:   52,
		MediumDowngradeFPS: 24,
		LowUpgradeFPS:      30,
		CommitAfter:        2500 * time.Millisecond,
		MinSamples:         30,
	}
}

// Classifier is a three-state hysteretic machine over quality levels. A
// candidate level must be continuously indicated for CommitAfter before it
// is applied, so a single slow frame never flips the tier.
type Classifier struct {
	thresholds Thresholds

	level        Level
	pending      Level
	pendingSince time.Time
	hasPending   bool
}

// NewClassifier creates a classifier starting at medium, the neutral tier
// while the sampler window warms up.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{thresholds: t, level: LevelMedium}
}

// Level returns the committed quality level.
func (c *Classifier) Level() Level {
	return c.level
}

// Throttling reports whether a downgrade is indicated but not yet
// committed. The UI surfaces this as an early warning distinct from the
// committed level.
func (c *Classifier) Throttling() bool {
	return c.hasPending && c.pending < c.level
}

// Classify feeds one smoothed fps reading into the machine and returns the
// committed level. sampleCount gates the startup guard: first frames are
// dominated by first-paint cost and must not trigger a premature downgrade.
func (c *Classifier) Classify(smoothedFPS float64, sampleCount int, now time.Time) Level {
	if sampleCount < c.thresholds.MinSamples {
		return c.level
	}

	candidate := c.candidate(smoothedFPS)

	if candidate == c.level {
		// Reading agrees with the committed level; cancel any pending
		// transition.
		c.hasPending = false
		return c.level
	}

	if !c.hasPending || c.pending != candidate {
		c.pending = candidate
		c.pendingSince = now
		c.hasPending = true
		return c.level
	}

	if now.Sub(c.pendingSince) >= c.thresholds.CommitAfter {
		c.level = c.pending
		c.hasPending = false
	}
	return c.level
}

// candidate picks the level the current reading indicates, relative to the
// committed level so the dead bands apply.
func (c *Classifier) candidate(fps float64) Level {
	t := c.thresholds
	switch c.level {
	case LevelHigh:
		if fps < t.MediumDowngradeFPS {
			return LevelLow
		}
		if fps < t.HighDowngradeFPS {
			return LevelMedium
		}
		return LevelHigh
	case LevelMedium:
		if fps < t.MediumDowngradeFPS {
			return LevelLow
		}
		if fps > t.MediumUpgradeFPS {
			return LevelHigh
		}
		return LevelMedium
	default: // LevelLow
		if fps > t.LowUpgradeFPS {
			if fps > t.MediumUpgradeFPS {
				return LevelHigh
			}
			return LevelMedium
		}
		return LevelLow
	}
}
