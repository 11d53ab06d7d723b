// Package config provides YAML-based game tuning, the linear progression
// derived from it, and hot reload of the tuning file.
package config

import (
	"errors"
	"fmt"
)

// FloppyConfig contains all tuning for the game.
type FloppyConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Flyer     Flyer     `yaml:"flyer"`
	Obstacles Obstacles `yaml:"obstacles"`
	Pickups   Pickups   `yaml:"pickups"`
	Session   Session   `yaml:"session"`
}

// World defines the play area in world units.
type World struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the Flyer's motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity after a flap (negative = up)
	TiltFactor  float64 `yaml:"tilt_factor"`  // Degrees of tilt per unit of velocity
	MaxTilt     float64 `yaml:"max_tilt"`     // Tilt is clamped to [-MaxTilt, MaxTilt]
}

// Flyer defines the player entity's hitbox and skins.
type Flyer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Skins  int `yaml:"skins"` // Number of skin tiers unlocked by leveling
}

// Obstacles defines obstacle spawning and the gap policy.
type Obstacles struct {
	Width             int     `yaml:"width"`
	Speed             float64 `yaml:"speed"`               // World units per tick
	BaseSpawnInterval int     `yaml:"base_spawn_interval"` // Ticks between spawns at game speed 1
	GameSpeed         float64 `yaml:"game_speed"`
	DefaultGap        int     `yaml:"default_gap"`
	MinGap            int     `yaml:"min_gap"`
	GapShrinkPerPoint int     `yaml:"gap_shrink_per_point"`
	GapTopMin         int     `yaml:"gap_top_min"`
	GapTopMax         int     `yaml:"gap_top_max"`
	RotationStep      float64 `yaml:"rotation_step"` // Degrees per tick, cosmetic only
}

// Pickups defines power-up spawning and effect duration.
type Pickups struct {
	Size          int     `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	YMin          int     `yaml:"y_min"`
	YMax          int     `yaml:"y_max"`
	EffectSeconds float64 `yaml:"effect_seconds"`
}

// Session defines scoring, leveling and the invincibility window.
type Session struct {
	InvincibleSeconds float64  `yaml:"invincible_seconds"`
	LevelUpScore      int      `yaml:"level_up_score"`
	Themes            []string `yaml:"themes"`
}

// Validate reports every inconsistent value in the config.
func (c FloppyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(c.Physics.Gravity > 0, "physics: gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse < 0, "physics: flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)
	check(c.Physics.MaxTilt >= 0, "physics: max_tilt must not be negative, got %v", c.Physics.MaxTilt)
	check(c.Flyer.Width > 0 && c.Flyer.Height > 0, "flyer: size must be positive, got %dx%d", c.Flyer.Width, c.Flyer.Height)
	check(c.Flyer.Skins > 0, "flyer: at least one skin is required, got %d", c.Flyer.Skins)
	check(c.Obstacles.Width > 0, "obstacles: width must be positive, got %d", c.Obstacles.Width)
	check(c.Obstacles.Speed > 0, "obstacles: speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.BaseSpawnInterval > 0, "obstacles: base_spawn_interval must be positive, got %d", c.Obstacles.BaseSpawnInterval)
	check(c.Obstacles.GameSpeed > 0, "obstacles: game_speed must be positive, got %v", c.Obstacles.GameSpeed)
	check(c.Obstacles.MinGap > 0 && c.Obstacles.MinGap <= c.Obstacles.DefaultGap,
		"obstacles: need 0 < min_gap <= default_gap, got %d and %d", c.Obstacles.MinGap, c.Obstacles.DefaultGap)
	check(c.Obstacles.GapShrinkPerPoint >= 0, "obstacles: gap_shrink_per_point must not be negative, got %d", c.Obstacles.GapShrinkPerPoint)
	check(c.Obstacles.GapTopMin >= 0 && c.Obstacles.GapTopMin <= c.Obstacles.GapTopMax,
		"obstacles: gap_top range [%d, %d] is invalid", c.Obstacles.GapTopMin, c.Obstacles.GapTopMax)
	check(c.Pickups.Size > 0, "pickups: size must be positive, got %d", c.Pickups.Size)
	check(c.Pickups.Speed > 0, "pickups: speed must be positive, got %v", c.Pickups.Speed)
	check(c.Pickups.SpawnInterval > 0, "pickups: spawn_interval must be positive, got %d", c.Pickups.SpawnInterval)
	check(c.Pickups.YMin >= 0 && c.Pickups.YMin <= c.Pickups.YMax, "pickups: y range [%d, %d] is invalid", c.Pickups.YMin, c.Pickups.YMax)
	check(c.Pickups.EffectSeconds > 0, "pickups: effect_seconds must be positive, got %v", c.Pickups.EffectSeconds)
	check(c.Session.InvincibleSeconds >= 0, "session: invincible_seconds must not be negative, got %v", c.Session.InvincibleSeconds)
	check(c.Session.LevelUpScore > 0, "session: level_up_score must be positive, got %d", c.Session.LevelUpScore)
	check(len(c.Session.Themes) > 0, "session: at least one theme is required")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
