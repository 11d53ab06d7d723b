package floppy

import (
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// Flyer is the player entity. X is fixed; only vertical motion is simulated.
type Flyer struct {
	X        int
	Y        float64 // Top of hitbox
	Velocity float64 // Positive = down
	Tilt     float64 // Degrees, positive = nose up
	Shield   bool
	Skin     int // Skin tier, only ever advances

	physics config.Physics
	width   int
	height  int
	maxSkin int
}

// NewFlyer places a fresh Flyer at mid height.
func NewFlyer(cfg config.FloppyConfig) Flyer {
	return Flyer{
		X:       cfg.Flyer.X,
		Y:       float64(cfg.World.Height / 2),
		physics: cfg.Physics,
		width:   cfg.Flyer.Width,
		height:  cfg.Flyer.Height,
		maxSkin: max(cfg.Flyer.Skins-1, 0),
	}
}

// Advance integrates one tick: velocity first, then position with the new velocity.
func (f *Flyer) Advance() {
	f.Velocity += f.physics.Gravity
	f.Y += f.Velocity
	f.Tilt = core.ClampF(-f.Velocity*f.physics.TiltFactor, -f.physics.MaxTilt, f.physics.MaxTilt)
}

// Flap resets velocity to the upward impulse.
func (f *Flyer) Flap() {
	f.Velocity = f.physics.FlapImpulse
}

// AdvanceSkin moves to the next skin tier, stopping at the last one.
func (f *Flyer) AdvanceSkin() {
	f.Skin = min(f.maxSkin, f.Skin+1)
}

// Rect returns the Flyer's collision rectangle.
func (f *Flyer) Rect() core.Rect {
	return core.NewRect(f.X, int(f.Y), f.width, f.height)
}
