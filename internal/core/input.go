package core

// Action represents a logical game event, abstracted from physical key presses.
// The platform translates keys into actions; the core never sees raw keys.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space, W, Up - flap upward
	ActionToggleSound        // M - mute/unmute audio cues
	ActionTogglePause        // P, Esc - pause/resume
	ActionRestart            // R - new session after game over
	ActionQuit               // Q, E, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionTogglePause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction returns the action with the given String name.
func ParseAction(name string) (Action, bool) {
	for a := ActionFlap; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Valid reports whether a is one of the known logical actions.
func (a Action) Valid() bool {
	return a > ActionNone && a <= ActionQuit
}

// InputFrame is the ordered sequence of actions delivered during one tick.
// Order matters for toggles; repeated flaps are collapsed by the game.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. Unknown actions are dropped.
func (f *InputFrame) Set(a Action) {
	if !a.Valid() {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions of this frame in delivery order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
// The backing array is dropped so earlier clones stay intact.
func (f *InputFrame) Clear() {
	f.actions = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.actions) == 0 {
		return InputFrame{}
	}
	clone := make([]Action, len(f.actions))
	copy(clone, f.actions)
	return InputFrame{actions: clone}
}
