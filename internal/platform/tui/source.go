package tui

import "github.com/vovakirdan/floppy/internal/core"

// Recorder keeps every input frame handed to the game, one per step.
type Recorder struct {
	frames []core.InputFrame
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a copy of f.
func (r *Recorder) Record(f core.InputFrame) {
	r.frames = append(r.frames, f.Clone())
}

// Frames returns the recorded frames in step order.
func (r *Recorder) Frames() []core.InputFrame {
	return r.frames
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Replay feeds recorded frames back one step at a time.
type Replay struct {
	frames []core.InputFrame
	pos    int
}

// NewReplay creates a replay over frames.
func NewReplay(frames []core.InputFrame) *Replay {
	return &Replay{frames: frames}
}

// Next returns the frame for the next step, or false when the recording
// is exhausted.
func (r *Replay) Next() (core.InputFrame, bool) {
	if r.pos >= len(r.frames) {
		return core.InputFrame{}, false
	}
	f := r.frames[r.pos]
	r.pos++
	return f, true
}

// Done reports whether every frame has been played.
func (r *Replay) Done() bool {
	return r.pos >= len(r.frames)
}

// Progress returns the number of played and total frames.
func (r *Replay) Progress() (played, total int) {
	return r.pos, len(r.frames)
}
