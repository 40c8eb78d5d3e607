package breath

import "math"

// Opacity maps a phase and its progress to a brightness value in [0, 1].
// The curve rises with an ease-out during inhale, holds at 1, falls with an
// ease-in during exhale, and holds at 0. The value at the end of each phase
// equals the value at the start of the next, so the scene never pops at a
// phase boundary.
func Opacity(phaseIndex int, phaseProgress float64) float64 {
	p := clamp01(phaseProgress)
	switch phaseIndex {
	case PhaseInhale:
		return easeOutCubic(p)
	case PhaseHoldIn:
		return 1
	case PhaseExhale:
		return 1 - easeInCubic(p)
	default:
		return 0
	}
}

// Scale maps a phase and its progress to an orb radius multiplier in
// [minScale, 1], with the same boundary-continuity contract as Opacity.
func Scale(phaseIndex int, phaseProgress float64) float64 {
	const minScale = 0.35
	return minScale + (1-minScale)*Opacity(phaseIndex, phaseProgress)
}

func easeOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

func easeInCubic(p float64) float64 {
	return math.Pow(p, 3)
}
