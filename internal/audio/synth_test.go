package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/floppy/internal/core"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute value seen.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	limit := SampleRate.N(5 * time.Second)

	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if math.IsNaN(buf[i][0]) || buf[i][0] != buf[i][1] {
				t.Fatalf("bad sample %v at %d", buf[i], total+i)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(440, 440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, s)
	if want := rate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if peak > 1 {
		t.Errorf("peak = %v, want <= 1", peak)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestToneSquareValues(t *testing.T) {
	s := NewTone(220, 440, 20*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 200)

	n, ok := s.Stream(buf)
	if !ok || n != 200 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := range n {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %v", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewEnvelope(NewTone(0, 0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))

	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at start of attack", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, want 1", mid)
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want near 0", last)
	}
}

func TestSoundForEveryCue(t *testing.T) {
	for _, c := range []core.Cue{core.CueFlap, core.CueHit, core.CuePoint, core.CuePowerup} {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, SampleRate, 0.5)
			if s == nil {
				t.Fatal("no sound")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("empty sound")
			}
			if peak == 0 {
				t.Error("silent sound")
			}
			if peak > 1 {
				t.Errorf("peak = %v, want <= 1 at gain 0.5", peak)
			}
		})
	}
}

func TestSoundSilentGain(t *testing.T) {
	_, peak := drain(t, Sound(core.CueHit, SampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}

func TestSoundUnknownCue(t *testing.T) {
	if s := Sound(core.Cue(99), SampleRate, 1); s != nil {
		t.Error("sound for unknown cue")
	}
}

func TestOpenMutedIsNop(t *testing.T) {
	p, err := Open(true, 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Fatalf("Open(muted) = %T, want Nop", p)
	}
	p.Handle(core.CueFlap, true)
	p.Close()
}
