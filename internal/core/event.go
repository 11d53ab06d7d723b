package core

// Cue identifies an audio intent emitted by the simulation.
type Cue int

const (
	CueFlap Cue = iota
	CueHit
	CuePoint
	CuePowerup
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueHit:
		return "hit"
	case CuePoint:
		return "point"
	case CuePowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// EventKind classifies a domain event.
type EventKind int

const (
	EventObstacleSpawned EventKind = iota
	EventPickupSpawned
	EventPickupCollected // Value: pickup kind
	EventShieldAbsorbed
	EventScored  // Value: points awarded
	EventLevelUp // Value: new level
	EventDied    // Value: final score
	EventPaused
	EventResumed
	EventRestarted
	EventSoundToggled // Value: 1 if enabled
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventPickupSpawned:
		return "pickup_spawned"
	case EventPickupCollected:
		return "pickup_collected"
	case EventShieldAbsorbed:
		return "shield_absorbed"
	case EventScored:
		return "scored"
	case EventLevelUp:
		return "level_up"
	case EventDied:
		return "died"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestarted:
		return "restarted"
	case EventSoundToggled:
		return "sound_toggled"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick.
type Event struct {
	Kind  EventKind
	Tick  int
	Value int
}
