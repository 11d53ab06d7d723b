// Package audio turns game cues into short synthesized sounds.
// Sounds are generated on the fly with beep streamers; no assets are loaded.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/floppy/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	from, to float64 // Hz at start and end
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	total    int
	pos      int
}

// NewTone returns a streamer that plays a tone sliding from one frequency
// to another over d.
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, rate: rate, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack samples and out over release samples.
type envelope struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	pos      int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain. Zero or less is silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func shaped(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(from, to, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound builds the streamer for a cue at the given gain.
// It returns nil for cues without a sound.
func Sound(c core.Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueFlap:
		// Short upward chirp
		s = shaped(420, 720, 70*time.Millisecond, WaveSquare, rate)
	case core.CueHit:
		// Low falling buzz
		s = shaped(180, 60, 260*time.Millisecond, WaveSaw, rate)
	case core.CuePoint:
		// Two-note coin
		s = beep.Seq(
			shaped(988, 988, 60*time.Millisecond, WaveSquare, rate),
			shaped(1319, 1319, 120*time.Millisecond, WaveSquare, rate),
		)
	case core.CuePowerup:
		// Rising arpeggio with an octave on top
		s = beep.Mix(
			beep.Seq(
				shaped(523, 523, 60*time.Millisecond, WaveSine, rate),
				shaped(659, 659, 60*time.Millisecond, WaveSine, rate),
				shaped(784, 784, 60*time.Millisecond, WaveSine, rate),
			),
			withVolume(shaped(1046, 1568, 180*time.Millisecond, WaveSine, rate), 0.3),
		)
	default:
		return nil
	}
	return withVolume(s, gain)
}
