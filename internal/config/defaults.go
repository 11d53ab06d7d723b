package config

import (
	_ "embed"
)

//go:embed defaults/floppy.yaml
var defaultFloppyYAML []byte

// DefaultFloppyConfig returns the built-in tuning.
func DefaultFloppyConfig() FloppyConfig {
	return FloppyConfig{
		World: World{
			Width:  800,
			Height: 700,
		},
		Physics: Physics{
			Gravity:     0.35,
			FlapImpulse: -8,
			TiltFactor:  3,
			MaxTilt:     30,
		},
		Flyer: Flyer{
			X:      100,
			Width:  45,
			Height: 35,
			Skins:  4,
		},
		Obstacles: Obstacles{
			Width:             80,
			Speed:             3,
			BaseSpawnInterval: 90,
			GameSpeed:         1,
			DefaultGap:        200,
			MinGap:            120,
			GapShrinkPerPoint: 2,
			GapTopMin:         100,
			GapTopMax:         400,
			RotationStep:      2,
		},
		Pickups: Pickups{
			Size:          30,
			Speed:         3,
			SpawnInterval: 300,
			YMin:          100,
			YMax:          400,
			EffectSeconds: 3,
		},
		Session: Session{
			InvincibleSeconds: 2,
			LevelUpScore:      10,
			Themes:            []string{"Morning", "Noon", "Sunset", "Night"},
		},
	}
}

// DefaultYAML returns the embedded default tuning document.
func DefaultYAML() []byte {
	return defaultFloppyYAML
}
