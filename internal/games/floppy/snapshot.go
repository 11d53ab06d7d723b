package floppy

import (
	"math"
	"slices"

	"github.com/vovakirdan/floppy/internal/core"
)

// Snapshot is an immutable copy of the session taken after a step.
// Renderers and other readers outside the update loop use it instead of
// touching the live Game.
type Snapshot struct {
	Tick  int
	Run   int
	Phase core.Phase

	Score        int
	Level        int
	Theme        string
	ThemeIndex   int
	SlowMotion   int
	DoublePoints int
	SoundEnabled bool

	Flyer     FlyerView
	Obstacles []Obstacle
	Pickups   []Pickup

	// Geometry needed to draw the world
	WorldW, WorldH int
	ObstacleWidth  int
	PickupSize     int
}

// FlyerView is the drawable part of the Flyer.
type FlyerView struct {
	X        int
	Y        float64
	Velocity float64
	Tilt     float64
	Width    int
	Height   int
	Shield   bool
	Skin     int
}

// Latest returns the snapshot published by the most recent step.
// It is safe to call from any goroutine.
func (g *Game) Latest() *Snapshot {
	return g.latest.Load()
}

// Snapshot builds a snapshot of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Run:          g.run,
		Phase:        g.phase,
		Score:        g.score,
		Level:        g.level,
		Theme:        g.cfg.Session.Themes[g.theme],
		ThemeIndex:   g.theme,
		SlowMotion:   g.slowMotion,
		DoublePoints: g.doublePoints,
		SoundEnabled: g.settings.SoundEnabled,
		Flyer: FlyerView{
			X:        g.flyer.X,
			Y:        g.flyer.Y,
			Velocity: g.flyer.Velocity,
			Tilt:     g.flyer.Tilt,
			Width:    g.flyer.width,
			Height:   g.flyer.height,
			Shield:   g.flyer.Shield,
			Skin:     g.flyer.Skin,
		},
		Obstacles:     slices.Clone(g.obstacles.All()),
		Pickups:       slices.Clone(g.pickups.All()),
		WorldW:        g.cfg.World.Width,
		WorldH:        g.cfg.World.Height,
		ObstacleWidth: g.obstacles.Width(),
		PickupSize:    g.pickups.Size(),
	}
}

func (g *Game) publish() {
	snap := g.Snapshot()
	g.latest.Store(&snap)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Run)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SlowMotion)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DoublePoints) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Flyer.Skin)   //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.Flyer.Y)
	h = h*31 + math.Float64bits(snap.Flyer.Velocity)
	if snap.Flyer.Shield {
		h = h*31 + 1
	}

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + uint64(o.GapTop)  //#nosec G115 -- hash computation
		h = h*31 + uint64(o.GapSize) //#nosec G115 -- hash computation
		if o.Passed {
			h = h*31 + 1
		}
	}
	for _, p := range snap.Pickups {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + uint64(p.Y)    //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
	}
	return h
}
