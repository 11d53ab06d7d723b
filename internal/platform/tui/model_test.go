package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/games/floppy"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", runeKey('w'), core.ActionFlap},
		{"m", runeKey('m'), core.ActionToggleSound},
		{"p", runeKey('p'), core.ActionTogglePause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionTogglePause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"e", runeKey('e'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestReplayKeyMapOnlyQuits(t *testing.T) {
	keys := ReplayKeyMap()

	if got := keys.MapKey(runeKey('w')); got != core.ActionNone {
		t.Errorf("flap enabled during replay: %v", got)
	}
	if got := keys.MapKey(runeKey('q')); got != core.ActionQuit {
		t.Errorf("quit = %v, want Quit", got)
	}
}

func newTestModel(t *testing.T, opts Options) (Model, *floppy.Game) {
	t.Helper()
	g := floppy.New(config.DefaultFloppyConfig())
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 9}
	m := NewModel(g, opts)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestTickStepsGameAndRecords(t *testing.T) {
	rec := NewRecorder()
	m, g := newTestModel(t, Options{Recorder: rec})

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if rec.Len() != 2 {
		t.Fatalf("recorded %d frames, want 2", rec.Len())
	}
	if !rec.Frames()[0].Has(core.ActionFlap) || rec.Frames()[1].Len() != 0 {
		t.Errorf("frames = %v, %v", rec.Frames()[0].Actions(), rec.Frames()[1].Actions())
	}
	if g.Latest().Tick != 2 {
		t.Errorf("game tick = %d, want 2", g.Latest().Tick)
	}
	if m.State().Phase != core.PhaseRunning {
		t.Errorf("phase = %v", m.State().Phase)
	}
}

func TestQuitThroughGame(t *testing.T) {
	rec := NewRecorder()
	m, _ := newTestModel(t, Options{Recorder: rec})

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("quit key returned a command before the tick")
	}
	m, _ = update(t, m, TickMsg{})
	if !m.quitting {
		t.Error("model not quitting after the quit tick")
	}
	if !rec.Frames()[0].Has(core.ActionQuit) {
		t.Error("quit frame not recorded")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestRecordedRunReplaysIdentically(t *testing.T) {
	rec := NewRecorder()
	m, live := newTestModel(t, Options{Recorder: rec})

	for i := range 400 {
		switch {
		case i%18 == 0:
			m, _ = update(t, m, runeKey('w'))
		case i == 150 || i == 170:
			m, _ = update(t, m, runeKey('p'))
		case i == 200:
			m, _ = update(t, m, runeKey('m'))
		}
		m, _ = update(t, m, TickMsg{})
	}

	r, replayed := newTestModel(t, Options{Replay: NewReplay(rec.Frames())})
	for range rec.Len() {
		r, _ = update(t, r, TickMsg{})
	}

	if got, want := replayed.Latest().Hash(), live.Latest().Hash(); got != want {
		t.Errorf("replay hash = %d, want %d", got, want)
	}

	r, cmd := update(t, r, TickMsg{})
	if !r.replayDone {
		t.Error("replay not marked done after the last frame")
	}
	if cmd != nil {
		t.Error("ticking continued after the replay ended")
	}
}

func TestReplayIgnoresGameKeys(t *testing.T) {
	frames := []core.InputFrame{{}, {}}
	m, g := newTestModel(t, Options{Replay: NewReplay(frames)})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if g.State().Phase != core.PhaseRunning {
		t.Error("keyboard reached the game during replay")
	}
}

type capturePlayer struct {
	cues  []core.Cue
	muted int
}

func (p *capturePlayer) Handle(c core.Cue, soundEnabled bool) {
	if !soundEnabled {
		p.muted++
		return
	}
	p.cues = append(p.cues, c)
}

func (p *capturePlayer) Close() {}

func TestCuesReachAudio(t *testing.T) {
	player := &capturePlayer{}
	m, _ := newTestModel(t, Options{Audio: player})

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg{})
	if len(player.cues) != 1 || player.cues[0] != core.CueFlap {
		t.Fatalf("cues = %v, want [Flap]", player.cues)
	}

	m, _ = update(t, m, runeKey('m'))
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg{})
	if len(player.cues) != 1 || player.muted != 1 {
		t.Errorf("muted cue played: cues=%v muted=%d", player.cues, player.muted)
	}
}

func TestReloadAppliesOnRestart(t *testing.T) {
	ch := make(chan config.Reload, 1)
	m, g := newTestModel(t, Options{Reloads: ch})

	cfg := config.DefaultFloppyConfig()
	cfg.Obstacles.DefaultGap = 150
	m, cmd := update(t, m, ReloadMsg{Config: cfg})
	if cmd == nil {
		t.Error("reload did not keep listening")
	}
	if g.Config().Obstacles.DefaultGap != 200 {
		t.Error("reload applied mid-run")
	}

	_, _ = update(t, m, ReloadMsg{Err: errTest})
}

var errTest = testError("broken file")

type testError string

func (e testError) Error() string { return string(e) }

func TestViewHasHelpFooter(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg{})

	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	if !containsAll(out, "flap", "pause", "quit") {
		t.Errorf("help footer missing from view")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
	if g.Latest().Tick != 1 {
		t.Error("resize reset the game")
	}
}
