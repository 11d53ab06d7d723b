package floppy

import "github.com/vovakirdan/floppy/internal/core"

// Autopilot is a simple flap policy used for headless runs.
// It steers the Flyer toward the center of the next gap.
type Autopilot struct {
	// Margin is how far below the target the Flyer may sink before flapping.
	Margin float64
}

// NewAutopilot returns an autopilot with a default margin.
func NewAutopilot() Autopilot {
	return Autopilot{Margin: 20}
}

// Next decides the input for the tick after snap.
func (a Autopilot) Next(snap *Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != core.PhaseRunning {
		return in
	}

	target := float64(snap.WorldH) / 2
	for _, o := range snap.Obstacles {
		if o.X+float64(snap.ObstacleWidth) > float64(snap.Flyer.X) {
			target = float64(o.GapTop) + float64(o.GapSize)/2
			break
		}
	}

	center := snap.Flyer.Y + float64(snap.Flyer.Height)/2
	if center > target+a.Margin && snap.Flyer.Velocity >= 0 {
		in.Set(core.ActionFlap)
	}
	return in
}
