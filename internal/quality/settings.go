package quality

// Settings holds the rendering budgets for one quality level. Records are
// created once at startup and never mutated; every consumer reads the same
// table instead of branching on the level itself.
type Settings struct {
	ParticleCount  int  // drifting ambient particles in the scene
	RingCount      int  // concentric rings drawn for the orb
	GlowEnabled    bool // soft falloff halo around the orb edge
	TrailLength    int  // particle motion trail cells
	SparklineWidth int  // fps history resolution in the settings panel
}

var settingsTable = map[Level]Settings{
	LevelLow: {
		ParticleCount:  12,
		RingCount:      2,
		GlowEnabled:    false,
		TrailLength:    0,
		SparklineWidth: 20,
	},
	LevelMedium: {
		ParticleCount:  36,
		RingCount:      3,
		GlowEnabled:    true,
		TrailLength:    2,
		SparklineWidth: 40,
	},
	LevelHigh: {
		ParticleCount:  80,
		RingCount:      4,
		GlowEnabled:    true,
		TrailLength:    4,
		SparklineWidth: 60,
	},
}

// SettingsFor returns the immutable budget record for a level. Unknown
// levels fall back to medium.
func SettingsFor(l Level) Settings {
	if s, ok := settingsTable[l]; ok {
		return s
	}
	return settingsTable[LevelMedium]
}
