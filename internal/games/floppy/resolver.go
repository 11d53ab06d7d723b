package floppy

// Outcome is the per-tick survival verdict.
type Outcome int

const (
	OutcomeSurvived       Outcome = iota
	OutcomeShieldAbsorbed         // A collision happened and consumed the shield
	OutcomeDied
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSurvived:
		return "survived"
	case OutcomeShieldAbsorbed:
		return "shield_absorbed"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// Resolver decides whether the Flyer survives the current tick.
type Resolver struct {
	obstacleWidth int
	worldH        int
}

// NewResolver creates a resolver for the given obstacle width and world height.
func NewResolver(obstacleWidth, worldH int) Resolver {
	return Resolver{obstacleWidth: obstacleWidth, worldH: worldH}
}

// Resolve checks the Flyer against every obstacle, then the vertical bounds.
// The first obstacle hit ends the scan: it either consumes the shield or kills.
// At most one shield is consumed per call.
func (r Resolver) Resolve(f *Flyer, obstacles []Obstacle) Outcome {
	rect := f.Rect()
	for _, o := range obstacles {
		if !rect.Intersects(o.TopRect(r.obstacleWidth)) && !rect.Intersects(o.BottomRect(r.obstacleWidth, r.worldH)) {
			continue
		}
		if f.Shield {
			f.Shield = false
			return OutcomeShieldAbsorbed
		}
		return OutcomeDied
	}

	if f.Y < 0 || f.Y > float64(r.worldH) {
		return OutcomeDied
	}
	return OutcomeSurvived
}
