package perf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stillwave.dev/internal/perf"
)

func TestSampler_SteadyFramesReportTargetRate(t *testing.T) {
	t.Parallel()
	s := perf.NewSampler(90, 60)
	for i := 0; i < 90; i++ {
		s.Sample(16.6)
	}
	assert.InDelta(t, 60.0, s.SmoothedFPS(), 0.5)
	assert.InDelta(t, 1.0, s.NormalizedScore(), 0.01)
	assert.Equal(t, 90, s.Len())
}

func TestSampler_SingleOutlierIsDiscarded(t *testing.T) {
	t.Parallel()
	s := perf.NewSampler(90, 60)
	for i := 0; i < 45; i++ {
		s.Sample(16.6)
	}
	// A backgrounded terminal reports one giant frame on resume. It must
	// not crater the smoothed signal.
	s.Sample(5000)
	for i := 0; i < 44; i++ {
		s.Sample(16.6)
	}
	assert.Greater(t, s.SmoothedFPS(), 55.0, "outlier should not drag the window average down")
}

func TestSampler_RejectsDegenerateDeltas(t *testing.T) {
	t.Parallel()
	s := perf.NewSampler(30, 60)
	for _, d := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1), 1000.1} {
		s.Sample(d)
	}
	assert.Equal(t, 0, s.Len())
}

func TestSampler_EmptyWindowReportsTarget(t *testing.T) {
	t.Parallel()
	s := perf.NewSampler(30, 30)
	assert.Equal(t, 30.0, s.SmoothedFPS())
}

func TestSampler_EvictsOldestOnOverflow(t *testing.T) {
	t.Parallel()
	s := perf.NewSampler(10, 60)
	// Fill with slow frames, then overwrite the whole window with fast
	// ones. Only the fast frames should remain.
	for i := 0; i < 10; i++ {
		s.Sample(100)
	}
	for i := 0; i < 10; i++ {
		s.Sample(10)
	}
	assert.Equal(t, 10, s.Len())
	assert.InDelta(t, 100.0, s.SmoothedFPS(), 0.5)
}

func TestSampler_FPSClampedToSaneRange(t *testing.T) {
	t.Parallel()
	fast := perf.NewSampler(10, 60)
	for i := 0; i < 10; i++ {
		fast.Sample(1) // 1000 fps raw
	}
	assert.Equal(t, 240.0, fast.SmoothedFPS())

	slow := perf.NewSampler(10, 60)
	for i := 0; i < 10; i++ {
		slow.Sample(1000) // 1 fps raw
	}
	assert.Equal(t, 1.0, slow.SmoothedFPS())
	assert.InDelta(t, 1.0/60.0, slow.NormalizedScore(), 0.001)
}
