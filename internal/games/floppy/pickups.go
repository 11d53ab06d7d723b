package floppy

import (
	"math/rand"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// PickupKind is the effect a pickup grants when collected.
type PickupKind int

const (
	PickupSlowMotion   PickupKind = iota // Halves the tick rate for a while
	PickupShield                         // Absorbs one collision
	PickupDoublePoints                   // Doubles points for a while
	pickupKindCount
)

// String returns the name of the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupSlowMotion:
		return "Slow Motion"
	case PickupShield:
		return "Shield"
	case PickupDoublePoints:
		return "Double Points"
	default:
		return "?"
	}
}

// Glyph returns the display character for a pickup kind.
func (k PickupKind) Glyph() rune {
	switch k {
	case PickupSlowMotion:
		return 'S'
	case PickupShield:
		return 'O'
	case PickupDoublePoints:
		return '2'
	default:
		return '?'
	}
}

// Pickup is a collectible drifting left with the obstacles.
type Pickup struct {
	X    float64
	Y    int
	Kind PickupKind
}

// Rect returns the pickup's collision rectangle.
func (p Pickup) Rect(size int) core.Rect {
	return core.NewRect(int(p.X), p.Y, size, size)
}

// PickupSet handles pickup spawning, movement, collection and removal.
type PickupSet struct {
	pickups []Pickup
	rng     *rand.Rand
	cfg     config.Pickups
	worldW  int
}

// NewPickupSet creates an empty set with its own RNG.
func NewPickupSet(seed int64, cfg config.FloppyConfig) PickupSet {
	return PickupSet{
		pickups: make([]Pickup, 0, 4),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg.Pickups,
		worldW:  cfg.World.Width,
	}
}

// Spawn adds a pickup of a random kind at the right boundary.
func (s *PickupSet) Spawn() Pickup {
	p := Pickup{X: float64(s.worldW)}
	p.Kind = PickupKind(s.rng.Intn(int(pickupKindCount)))
	p.Y = s.cfg.YMin + s.rng.Intn(s.cfg.YMax-s.cfg.YMin+1)
	s.pickups = append(s.pickups, p)
	return p
}

// Advance moves every pickup left and drops the ones off screen.
func (s *PickupSet) Advance() {
	kept := s.pickups[:0]
	for _, p := range s.pickups {
		p.X -= s.cfg.Speed
		if p.X > -float64(s.cfg.Size) {
			kept = append(kept, p)
		}
	}
	s.pickups = kept
}

// Collect removes every pickup overlapping r and returns their kinds in
// spawn order.
func (s *PickupSet) Collect(r core.Rect) []PickupKind {
	var collected []PickupKind
	kept := make([]Pickup, 0, len(s.pickups))
	for _, p := range s.pickups {
		if r.Intersects(p.Rect(s.cfg.Size)) {
			collected = append(collected, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	s.pickups = kept
	return collected
}

// All returns the live pickups in spawn order.
func (s *PickupSet) All() []Pickup {
	return s.pickups
}

// Len returns the number of live pickups.
func (s *PickupSet) Len() int {
	return len(s.pickups)
}

// Size returns the pickup edge length.
func (s *PickupSet) Size() int {
	return s.cfg.Size
}
