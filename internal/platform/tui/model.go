package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy/internal/audio"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Reset(rt core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	TickRate() int
	SetConfig(cfg config.FloppyConfig)
}

// Options configure a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Audio    audio.Player         // Nil plays nothing
	Logger   *log.Logger          // Nil discards logs
	Recorder *Recorder            // Records every frame when set
	Replay   *Replay              // Feeds recorded frames instead of the keyboard
	Reloads  <-chan config.Reload // Config reloads, applied on the next restart
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	replayDone bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	if opts.Replay != nil {
		keys = ReplayKeyMap()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		opts:       opts,
		keys:       keys,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	return max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.opts.Logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.opts.Runtime.Seed,
		"tick_rate", m.opts.Runtime.TickRate,
		"replay", m.opts.Replay != nil,
	)

	return tea.Batch(tickCmd(m.game.TickRate()), waitForReload(m.opts.Reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.opts.Replay != nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Quit goes through the game on the next tick so it is recorded.
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
// World coordinates do not depend on the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.replayDone {
		return m, nil
	}

	in := m.inputFrame
	if m.opts.Replay != nil {
		next, ok := m.opts.Replay.Next()
		if !ok {
			m.replayDone = true
			m.opts.Logger.Info("replay finished", "score", m.gameState.Score, "phase", m.gameState.Phase)
			return m, nil
		}
		in = next
	}

	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(in)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, c := range result.Cues {
		m.opts.Audio.Handle(c, result.State.SoundEnabled)
	}
	m.logEvents(result.Events)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Slow motion changes the rate, so ask the game every tick.
	return m, tickCmd(m.game.TickRate())
}

// handleReload stages a reloaded config. A broken file keeps the old one.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.opts.Logger.Warn("config reload failed, keeping current settings", "err", r.Err)
	} else {
		m.game.SetConfig(r.Config)
		m.opts.Logger.Info("config reloaded, applies on next restart")
	}
	return m, waitForReload(m.opts.Reloads)
}

func (m Model) logEvents(events []core.Event) {
	l := m.opts.Logger
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelUp:
			l.Info("level up", "level", e.Value, "tick", e.Tick)
		case core.EventDied:
			l.Info("game over", "score", e.Value, "tick", e.Tick)
		case core.EventRestarted:
			l.Info("restarted", "run", e.Value)
		case core.EventShieldAbsorbed:
			l.Debug("shield absorbed a hit", "tick", e.Tick)
		case core.EventPickupCollected:
			l.Debug("pickup collected", "kind", e.Value, "tick", e.Tick)
		default:
			l.Debug(e.Kind.String(), "value", e.Value, "tick", e.Tick)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".floppy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys)
	if m.opts.Replay != nil {
		played, total := m.opts.Replay.Progress()
		footer = fmt.Sprintf("replay %d/%d  %s", played, total, footer)
		if m.replayDone {
			footer = "replay finished  " + m.help.View(m.keys)
		}
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
