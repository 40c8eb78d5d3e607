package breath

import (
	"errors"
	"fmt"
	"math"
)

// Phase indices in cycle order.
const (
	PhaseInhale = iota
	PhaseHoldIn
	PhaseExhale
	PhaseHoldOut
	phaseCount
)

// PhaseName returns a display label for a phase index.
func PhaseName(idx int) string {
	switch idx {
	case PhaseInhale:
		return "inhale"
	case PhaseHoldIn:
		return "hold"
	case PhaseExhale:
		return "exhale"
	case PhaseHoldOut:
		return "rest"
	default:
		return "?"
	}
}

// PhaseConfig holds the four phase durations in seconds, in cycle order.
type PhaseConfig struct {
	Inhale  float64 `yaml:"inhale"`
	HoldIn  float64 `yaml:"hold_in"`
	Exhale  float64 `yaml:"exhale"`
	HoldOut float64 `yaml:"hold_out"`
}

// DefaultPhaseConfig is a 4-4-6-2 resonant breathing pattern.
func DefaultPhaseConfig() PhaseConfig {
	return PhaseConfig{Inhale: 4, HoldIn: 4, Exhale: 6, HoldOut: 2}
}

// Durations returns the phase durations in cycle order.
func (c PhaseConfig) Durations() [phaseCount]float64 {
	return [phaseCount]float64{c.Inhale, c.HoldIn, c.Exhale, c.HoldOut}
}

// TotalCycle returns the full cycle length in seconds.
func (c PhaseConfig) TotalCycle() float64 {
	return c.Inhale + c.HoldIn + c.Exhale + c.HoldOut
}

// Validate rejects configurations that would make ComputePhase divide by
// zero or walk a negative-length phase.
func (c PhaseConfig) Validate() error {
	var errs []error
	names := []string{"inhale", "hold_in", "exhale", "hold_out"}
	for i, d := range c.Durations() {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			errs = append(errs, fmt.Errorf("breath: %s duration %v is invalid", names[i], d))
		}
	}
	if len(errs) == 0 && c.TotalCycle() <= 0 {
		errs = append(errs, errors.New("breath: phase durations sum to zero"))
	}
	return errors.Join(errs...)
}

// State is the breathing state at a single instant. It carries no identity
// and is recomputed from the wall clock on every call.
type State struct {
	PhaseIndex    int     // 0=inhale, 1=hold-in, 2=exhale, 3=hold-out
	PhaseProgress float64 // [0, 1] within the current phase
	CycleProgress float64 // [0, 1] within the full cycle
}

// ComputePhase maps an absolute wall-clock time in seconds to the breathing
// state. It is pure: the same instant yields the same state on any machine,
// which is how independent clients stay visually synchronized without a
// network. There is no accumulated delta-time state, so suspended terminals
// and slow frames produce zero drift.
//
// nowSeconds must be finite and non-negative; anything else is a caller bug
// and panics rather than returning a plausible-looking wrong state. cfg must
// have passed Validate.
func ComputePhase(nowSeconds float64, cfg PhaseConfig) State {
	if math.IsNaN(nowSeconds) || math.IsInf(nowSeconds, 0) || nowSeconds < 0 {
		panic(fmt.Sprintf("breath: invalid time %v", nowSeconds))
	}

	total := cfg.TotalCycle()
	cycleTime := math.Mod(nowSeconds, total)

	// Strict less-than comparisons: an exact boundary instant belongs to
	// the next phase with progress 0, so no instant maps to two phases.
	durations := cfg.Durations()
	accumulated := 0.0
	for i, d := range durations {
		if cycleTime < accumulated+d {
			progress := 0.0
			if d > 0 {
				progress = clamp01((cycleTime - accumulated) / d)
			} else {
				progress = 1
			}
			return State{
				PhaseIndex:    i,
				PhaseProgress: progress,
				CycleProgress: cycleTime / total,
			}
		}
		accumulated += d
	}

	// Float rounding pushed cycleTime to >= total; clamp to the end of
	// the last phase.
	return State{
		PhaseIndex:    phaseCount - 1,
		PhaseProgress: 1,
		CycleProgress: 1,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
