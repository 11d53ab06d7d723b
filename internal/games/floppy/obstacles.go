package floppy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// Obstacle is a pair of barriers with a vertical gap the Flyer must pass through.
type Obstacle struct {
	X        float64 // Left edge
	PrevX    float64 // Left edge before the last advance
	GapTop   int     // Bottom edge of the top barrier
	GapSize  int     // Height of the passable gap
	Rotating bool    // Cosmetic spin, never affects collision
	Angle    float64 // Degrees in [0, 360)
	Passed   bool    // Already scored
}

// TopRect returns the collision rectangle of the top barrier.
func (o Obstacle) TopRect(width int) core.Rect {
	return core.NewRect(int(o.X), 0, width, o.GapTop)
}

// BottomRect returns the collision rectangle of the bottom barrier.
func (o Obstacle) BottomRect(width, worldH int) core.Rect {
	bottomY := o.GapTop + o.GapSize
	return core.NewRect(int(o.X), bottomY, width, worldH-bottomY)
}

// crossed reports whether the trailing edge moved past x during the last advance.
func (o Obstacle) crossed(x float64, width int) bool {
	w := float64(width)
	return o.PrevX+w > x && x >= o.X+w
}

// ObstacleSet handles spawning, movement, scoring and removal of obstacles.
type ObstacleSet struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Obstacles
	worldW    int
}

// NewObstacleSet creates an empty set with its own RNG.
func NewObstacleSet(seed int64, cfg config.FloppyConfig) ObstacleSet {
	return ObstacleSet{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg.Obstacles,
		worldW:    cfg.World.Width,
	}
}

// Spawn adds an obstacle at the right boundary with the given gap size.
func (s *ObstacleSet) Spawn(gap int) Obstacle {
	x := float64(s.worldW)
	o := Obstacle{
		X:        x,
		PrevX:    x,
		GapTop:   s.cfg.GapTopMin + s.rng.Intn(s.cfg.GapTopMax-s.cfg.GapTopMin+1),
		GapSize:  gap,
		Rotating: s.rng.Intn(2) == 0,
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

// Advance moves every obstacle left and drops the ones fully off screen.
func (s *ObstacleSet) Advance() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.PrevX = o.X
		o.X -= s.cfg.Speed
		if o.Rotating {
			o.Angle = math.Mod(o.Angle+s.cfg.RotationStep, 360)
		}
		if o.X > -float64(s.cfg.Width) {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// ScorePassed marks obstacles whose trailing edge crossed x this tick and
// returns how many there were. Each obstacle scores at most once.
func (s *ObstacleSet) ScorePassed(x float64) int {
	passed := 0
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Passed && o.crossed(x, s.cfg.Width) {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// All returns the live obstacles in spawn order.
func (s *ObstacleSet) All() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.obstacles)
}

// Width returns the obstacle width.
func (s *ObstacleSet) Width() int {
	return s.cfg.Width
}
