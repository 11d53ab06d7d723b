package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/floppy/internal/core"
)

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(0, 0, "Score: 5", core.ColorWhite)
	s.DrawTextColor(10, 0, "ok", core.ColorGreen)
	s.SetColor(3, 2, '█', core.ColorOrange)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	if !containsAll(out, "Score: 5", "ok", "█") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestRecorderClonesFrames(t *testing.T) {
	rec := NewRecorder()
	f := core.NewInputFrame()
	f.Set(core.ActionFlap)
	rec.Record(f)
	f.Set(core.ActionQuit)

	if rec.Frames()[0].Len() != 1 {
		t.Error("recorded frame changed after the source frame was modified")
	}
}

func TestReplayProgress(t *testing.T) {
	r := NewReplay(make([]core.InputFrame, 3))

	for i := range 3 {
		if _, ok := r.Next(); !ok {
			t.Fatalf("Next() exhausted at %d", i)
		}
	}
	if _, ok := r.Next(); ok {
		t.Error("Next() returned a frame past the end")
	}
	played, total := r.Progress()
	if played != 3 || total != 3 || !r.Done() {
		t.Errorf("Progress = %d/%d done=%v", played, total, r.Done())
	}
}
