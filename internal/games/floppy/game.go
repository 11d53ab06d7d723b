// Package floppy implements the side-scrolling reflex game engine.
// The player flaps a falling Flyer through gapped obstacles and collects
// timed pickups. Every tick is a deterministic function of the seed and
// the input frames received so far.
package floppy

import (
	"math/rand"
	"sync/atomic"

	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
)

// Settings are player preferences that survive restarts.
type Settings struct {
	SoundEnabled bool
}

// Game is one play session: it owns the Flyer, both entity streams, score,
// level, timed modifiers and the phase state machine.
type Game struct {
	cfg         config.FloppyConfig
	pending     *config.FloppyConfig // Applied on the next restart
	runtime     core.RuntimeConfig
	progression config.Progression
	resolver    Resolver
	settings    Settings

	flyer     Flyer
	obstacles ObstacleSet
	pickups   PickupSet

	phase        core.Phase
	tick         int // Ticks simulated in this run (paused ticks excluded)
	score        int
	level        int
	theme        int
	slowMotion   int // Remaining ticks
	doublePoints int // Remaining ticks

	seeds   *rand.Rand // Derives one seed per run from the base seed
	run     int
	runSeed int64

	result core.StepResult
	latest atomic.Pointer[Snapshot]
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.FloppyConfig) *Game {
	return &Game{
		cfg:      cfg,
		settings: Settings{SoundEnabled: true},
	}
}

// ID returns the identifier used for logs and recorded runs.
func (g *Game) ID() string {
	return "floppy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Floppy Bird"
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.FloppyConfig {
	return g.cfg
}

// SetConfig stages new tuning. It takes effect on the next restart so the
// current run stays reproducible.
func (g *Game) SetConfig(cfg config.FloppyConfig) {
	g.pending = &cfg
}

// Reset starts a brand new play session from the runtime seed.
// Settings return to their defaults.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.settings = Settings{SoundEnabled: true}
	g.seeds = rand.New(rand.NewSource(rt.Seed))
	g.run = 0
	g.startRun()
	g.publish()
}

// startRun re-initializes every per-life field.
func (g *Game) startRun() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	g.progression = config.NewProgression(g.cfg, g.runtime.TickRate)
	g.resolver = NewResolver(g.cfg.Obstacles.Width, g.cfg.World.Height)
	g.run++
	g.runSeed = g.seeds.Int63()

	g.flyer = NewFlyer(g.cfg)
	g.obstacles = NewObstacleSet(g.runSeed, g.cfg)
	g.pickups = NewPickupSet(g.runSeed^0x5DEECE66D, g.cfg)

	g.phase = core.PhaseRunning
	g.tick = 0
	g.score = 0
	g.level = 1
	g.theme = 0
	g.slowMotion = 0
	g.doublePoints = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.result = core.StepResult{}

	g.handleInput(in)
	if !g.result.Quit && g.phase == core.PhaseRunning {
		g.update()
	}

	g.publish()
	g.result.State = g.State()
	return g.result
}

// handleInput applies the frame's actions in order.
// Flaps after the first one in a tick are ignored.
func (g *Game) handleInput(in core.InputFrame) {
	flapped := false
	for _, a := range in.Actions() {
		switch a {
		case core.ActionFlap:
			if g.phase == core.PhaseRunning && !flapped {
				g.flyer.Flap()
				g.cue(core.CueFlap)
				flapped = true
			}
		case core.ActionToggleSound:
			g.settings.SoundEnabled = !g.settings.SoundEnabled
			g.emit(core.EventSoundToggled, boolValue(g.settings.SoundEnabled))
		case core.ActionTogglePause:
			switch g.phase {
			case core.PhaseRunning:
				g.phase = core.PhasePaused
				g.emit(core.EventPaused, 0)
			case core.PhasePaused:
				g.phase = core.PhaseRunning
				g.emit(core.EventResumed, 0)
			}
		case core.ActionRestart:
			if g.phase == core.PhaseGameOver {
				g.startRun()
				flapped = false
				g.emit(core.EventRestarted, g.run)
			}
		case core.ActionQuit:
			g.result.Quit = true
			return
		}
	}
}

// update runs one Running tick in fixed order.
func (g *Game) update() {
	g.tick++
	g.flyer.Advance()

	if g.tick%g.progression.SpawnInterval() == 0 {
		g.obstacles.Spawn(g.progression.GapSize(g.score))
		g.emit(core.EventObstacleSpawned, g.obstacles.Len())
	}
	if g.tick%g.cfg.Pickups.SpawnInterval == 0 {
		p := g.pickups.Spawn()
		g.emit(core.EventPickupSpawned, int(p.Kind))
	}

	g.obstacles.Advance()
	g.pickups.Advance()

	if g.tick > g.progression.InvincibleTicks() {
		switch g.resolver.Resolve(&g.flyer, g.obstacles.All()) {
		case OutcomeShieldAbsorbed:
			g.cue(core.CuePowerup)
			g.emit(core.EventShieldAbsorbed, 0)
		case OutcomeDied:
			g.cue(core.CueHit)
			g.phase = core.PhaseGameOver
			g.emit(core.EventDied, g.score)
			return
		}
	}

	g.applyPickups()
	g.applyScoring()
	g.slowMotion = max(0, g.slowMotion-1)
	g.doublePoints = max(0, g.doublePoints-1)
}

// applyPickups collects overlapping pickups and applies their effects.
func (g *Game) applyPickups() {
	for _, kind := range g.pickups.Collect(g.flyer.Rect()) {
		switch kind {
		case PickupSlowMotion:
			g.slowMotion = g.progression.EffectTicks()
		case PickupShield:
			g.flyer.Shield = true
		case PickupDoublePoints:
			g.doublePoints = g.progression.EffectTicks()
		}
		g.cue(core.CuePowerup)
		g.emit(core.EventPickupCollected, int(kind))
	}
}

// applyScoring awards points for every obstacle passed this tick.
// Leveling checks for an exact multiple, so a double-points jump over a
// boundary does not level up.
func (g *Game) applyScoring() {
	for range g.obstacles.ScorePassed(float64(g.flyer.X)) {
		points := 1
		if g.doublePoints > 0 {
			points = 2
		}
		g.score += points
		g.cue(core.CuePoint)
		g.emit(core.EventScored, points)

		if g.progression.ReachedLevel(g.score) {
			g.level++
			g.theme = (g.theme + 1) % len(g.cfg.Session.Themes)
			g.flyer.AdvanceSkin()
			g.emit(core.EventLevelUp, g.level)
		}
	}
}

func (g *Game) cue(c core.Cue) {
	g.result.Cues = append(g.result.Cues, c)
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.result.Events = append(g.result.Events, core.Event{Kind: kind, Tick: g.tick, Value: value})
}

// TickRate returns the rate the clock should use for the next tick.
func (g *Game) TickRate() int {
	if g.slowMotion > 0 {
		return g.progression.SlowTickRate()
	}
	return g.progression.TickRate()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Level:        g.level,
		Phase:        g.phase,
		SoundEnabled: g.settings.SoundEnabled,
		TickRate:     g.TickRate(),
	}
}

// Settings returns the current player preferences.
func (g *Game) Settings() Settings {
	return g.settings
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
