package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/floppy/internal/core"
)

// SampleRate is the output rate of every synthesized sound.
const SampleRate = beep.SampleRate(44100)

// Player plays cues. Handle must not block the game loop.
type Player interface {
	Handle(c core.Cue, soundEnabled bool)
	Close()
}

// Nop is a player that never makes a sound.
type Nop struct{}

// Handle ignores the cue.
func (Nop) Handle(core.Cue, bool) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	closed bool
}

// OpenSpeaker initializes the audio device. The returned error means no
// device is available; callers fall back to Nop.
func OpenSpeaker(gain float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Speaker{mixer: &beep.Mixer{}, gain: gain}
	speaker.Play(s.mixer)
	return s, nil
}

// Handle starts the cue's sound unless sound is disabled.
// Overlapping cues are mixed.
func (s *Speaker) Handle(c core.Cue, soundEnabled bool) {
	if !soundEnabled {
		return
	}
	st := Sound(c, SampleRate, s.gain)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Open returns a speaker player, or Nop when muted or no device is available.
// The error is returned alongside Nop so callers can log it.
func Open(muted bool, gain float64) (Player, error) {
	if muted {
		return Nop{}, nil
	}
	s, err := OpenSpeaker(gain)
	if err != nil {
		return Nop{}, err
	}
	return s, nil
}
