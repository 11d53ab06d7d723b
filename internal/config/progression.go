package config

import "math"

// Progression derives per-tick game parameters from the tuning.
// Difficulty follows one linear rule: the gap shrinks with score down to a floor.
type Progression struct {
	cfg      FloppyConfig
	tickRate int
}

// NewProgression creates a progression for the given tuning and tick rate.
func NewProgression(cfg FloppyConfig, tickRate int) Progression {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Progression{cfg: cfg, tickRate: tickRate}
}

// GapSize returns the obstacle gap for the current score.
func (p Progression) GapSize(score int) int {
	o := p.cfg.Obstacles
	return max(o.MinGap, o.DefaultGap-o.GapShrinkPerPoint*score)
}

// SpawnInterval returns the ticks between obstacle spawns.
func (p Progression) SpawnInterval() int {
	o := p.cfg.Obstacles
	speed := o.GameSpeed
	if speed <= 0 {
		speed = 1
	}
	return max(1, int(math.Round(float64(o.BaseSpawnInterval)/speed)))
}

// EffectTicks returns how long a timed pickup effect lasts.
func (p Progression) EffectTicks() int {
	return p.seconds(p.cfg.Pickups.EffectSeconds)
}

// InvincibleTicks returns the length of the invincibility window.
func (p Progression) InvincibleTicks() int {
	return p.seconds(p.cfg.Session.InvincibleSeconds)
}

// TickRate returns the normal tick rate.
func (p Progression) TickRate() int {
	return p.tickRate
}

// SlowTickRate returns the tick rate while slow motion is active.
func (p Progression) SlowTickRate() int {
	return max(1, p.tickRate/2)
}

// ReachedLevel reports whether score lands exactly on a level boundary.
// A jump of more than one point can step over a boundary without leveling.
func (p Progression) ReachedLevel(score int) bool {
	return score > 0 && score%p.cfg.Session.LevelUpScore == 0
}

func (p Progression) seconds(s float64) int {
	return int(math.Round(s * float64(p.tickRate)))
}
