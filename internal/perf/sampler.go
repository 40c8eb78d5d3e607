package perf

import "math"

const (
	// DefaultWindowSize holds ~3 seconds of frames at 30 FPS.
	DefaultWindowSize = 90

	// maxSampleMs rejects frames slower than 1 FPS. A backgrounded
	// terminal reports one multi-second "frame" on resume, and a single
	// such sample would dominate the rolling average for the whole
	// window duration.
	maxSampleMs = 1000.0

	minFPS = 1.0
	maxFPS = 240.0
)

// Sampler keeps a fixed-capacity rolling window of per-frame durations and
// exposes a smoothed, outlier-resistant FPS signal. One writer (the frame
// loop) mutates it; readers run on the same goroutine.
type Sampler struct {
	buf       []float64
	pos       int
	count     int
	sum       float64
	targetFPS float64
}

// NewSampler creates a sampler with the given window capacity and target FPS.
func NewSampler(capacity int, targetFPS float64) *Sampler {
	if capacity <= 0 {
		capacity = DefaultWindowSize
	}
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &Sampler{
		buf:       make([]float64, capacity),
		targetFPS: targetFPS,
	}
}

// Sample records one frame duration in milliseconds. Non-finite, zero,
// negative, and absurdly large deltas are discarded rather than stored, so a
// single bad frame cannot corrupt the window.
func (s *Sampler) Sample(deltaMs float64) {
	if math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) {
		return
	}
	if deltaMs <= 0 || deltaMs > maxSampleMs {
		return
	}

	if s.count == len(s.buf) {
		s.sum -= s.buf[s.pos]
	} else {
		s.count++
	}
	s.buf[s.pos] = deltaMs
	s.sum += deltaMs
	s.pos = (s.pos + 1) % len(s.buf)
}

// SmoothedFPS returns 1000/mean(window), clamped to [1, 240]. While the
// window is empty it reports the target FPS so early consumers see a neutral
// signal instead of zero.
func (s *Sampler) SmoothedFPS() float64 {
	if s.count == 0 {
		return s.targetFPS
	}
	mean := s.sum / float64(s.count)
	fps := 1000.0 / mean
	if fps < minFPS {
		return minFPS
	}
	if fps > maxFPS {
		return maxFPS
	}
	return fps
}

// NormalizedScore returns SmoothedFPS divided by the target FPS, clamped to
// [0, 1]. Display-only.
func (s *Sampler) NormalizedScore() float64 {
	score := s.SmoothedFPS() / s.targetFPS
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Len returns the number of samples currently in the window.
func (s *Sampler) Len() int {
	return s.count
}

// TargetFPS returns the configured target frame rate.
func (s *Sampler) TargetFPS() float64 {
	return s.targetFPS
}
