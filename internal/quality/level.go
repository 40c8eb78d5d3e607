package quality

import "fmt"

// Level is a committed rendering-fidelity tier.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether l is a recognised level.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// Preset is the user-selected quality mode: a fixed level, or auto to
// follow the classifier.
type Preset string

const (
	PresetAuto   Preset = "auto"
	PresetLow    Preset = "low"
	PresetMedium Preset = "medium"
	PresetHigh   Preset = "high"
)

// Valid reports whether p is a recognised preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetAuto, PresetLow, PresetMedium, PresetHigh:
		return true
	}
	return false
}

// Level returns the fixed level for an explicit preset. ok is false for
// PresetAuto.
func (p Preset) Level() (level Level, ok bool) {
	switch p {
	case PresetLow:
		return LevelLow, true
	case PresetMedium:
		return LevelMedium, true
	case PresetHigh:
		return LevelHigh, true
	}
	return 0, false
}

// ParsePreset converts a stored string into a Preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(s)
	if !p.Valid() {
		return "", fmt.Errorf("quality: unknown preset %q", s)
	}
	return p, nil
}
