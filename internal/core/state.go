package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for tick timing and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second at normal speed (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score        int
	Level        int
	Phase        Phase
	SoundEnabled bool
	TickRate     int // Rate the clock should use for the next tick
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and everything that happened this tick.
type StepResult struct {
	State  GameState
	Cues   []Cue   // Audio intents, in emission order
	Events []Event // Domain events, in emission order
	Quit   bool    // Quit was requested; the platform should exit
}
