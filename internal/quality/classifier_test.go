package quality_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stillwave.dev/internal/quality"
)

const warmSamples = 100 // past the startup guard

func testThresholds() quality.Thresholds {
	t := quality.DefaultThresholds()
	t.CommitAfter = 2 * time.Second
	return t
}

// feed pushes the same reading repeatedly over a span, stepping the clock
// by 100ms per reading, and returns the final committed level.
func feed(c *quality.Classifier, fps float64, start time.Time, span time.Duration) (quality.Level, time.Time) {
	now := start
	level := c.Level()
	for elapsed := time.Duration(0); elapsed <= span; elapsed += 100 * time.Millisecond {
		level = c.Classify(fps, warmSamples, now)
		now = now.Add(100 * time.Millisecond)
	}
	return level, now
}

func climbToHigh(t *testing.T, c *quality.Classifier, start time.Time) time.Time {
	t.Helper()
	level, now := feed(c, 60, start, 3*time.Second)
	assert.Equal(t, quality.LevelHigh, level, "sustained 60fps should reach high")
	return now
}

func TestClassifier_StartsAtMedium(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	assert.Equal(t, quality.LevelMedium, c.Level())
}

func TestClassifier_StartupGuardHoldsLevel(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := time.Now()
	// Terrible fps, but too few samples: shader-compile-style warmup must
	// not trigger a premature downgrade.
	for i := 0; i < 50; i++ {
		level := c.Classify(5, i, now)
		assert.Equal(t, quality.LevelMedium, level)
		now = now.Add(100 * time.Millisecond)
	}
}

func TestClassifier_SingleBadReadingDoesNotDowngrade(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := climbToHigh(t, c, time.Now())

	level := c.Classify(30, warmSamples, now)
	assert.Equal(t, quality.LevelHigh, level, "one slow reading must not change the committed level")
	assert.True(t, c.Throttling(), "pending downgrade should surface as throttling")
}

func TestClassifier_SustainedLowCommitsDowngrade(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := climbToHigh(t, c, time.Now())

	level, _ := feed(c, 40, now, 3*time.Second)
	assert.Equal(t, quality.LevelMedium, level, "sustained 40fps should downgrade high to medium")
	assert.False(t, c.Throttling())
}

func TestClassifier_RecoveryCancelsPendingDowngrade(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := climbToHigh(t, c, time.Now())

	// Indicate a downgrade for less than the commit window...
	_, now = feed(c, 40, now, time.Second)
	assert.True(t, c.Throttling())

	// ...then recover. The pending transition must be cancelled outright,
	// not resumed by a later dip.
	level := c.Classify(60, warmSamples, now)
	assert.Equal(t, quality.LevelHigh, level)
	assert.False(t, c.Throttling())

	// A fresh dip needs the full commit window again.
	level = c.Classify(40, warmSamples, now.Add(200*time.Millisecond))
	assert.Equal(t, quality.LevelHigh, level)
}

func TestClassifier_DeadBandPreventsOscillation(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := climbToHigh(t, c, time.Now())

	// 48 fps sits between the high downgrade threshold (45) and the
	// medium upgrade threshold (52): acceptable for high, so no flicker.
	level, now := feed(c, 48, now, 5*time.Second)
	assert.Equal(t, quality.LevelHigh, level)

	// Commit a downgrade, then hover in the same band: medium must hold
	// too, because 48 is below the upgrade threshold.
	level, now = feed(c, 40, now, 3*time.Second)
	assert.Equal(t, quality.LevelMedium, level)
	level, _ = feed(c, 48, now, 5*time.Second)
	assert.Equal(t, quality.LevelMedium, level)
}

func TestClassifier_CollapseSkipsStraightToLow(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := climbToHigh(t, c, time.Now())

	level, _ := feed(c, 10, now, 3*time.Second)
	assert.Equal(t, quality.LevelLow, level, "a collapse below the medium floor should not stop at medium")
}

func TestClassifier_UpgradeIsAlsoDebounced(t *testing.T) {
	t.Parallel()
	c := quality.NewClassifier(testThresholds())
	now := time.Now()

	level := c.Classify(60, warmSamples, now)
	assert.Equal(t, quality.LevelMedium, level, "one fast reading must not upgrade immediately")
	assert.False(t, c.Throttling(), "a pending upgrade is not throttling")

	level, _ = feed(c, 60, now, 3*time.Second)
	assert.Equal(t, quality.LevelHigh, level)
}
