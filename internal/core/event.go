package core

// EventKind enumerates the discrete outcomes of a simulation step.
type EventKind int

const (
	EventWallBounce   EventKind = iota // Ball reflected off left, right or top wall
	EventPaddleBounce                  // Ball reflected off the paddle
	EventBlockHit                      // A block was struck and removed
	EventLifeLost                      // Ball passed the bottom wall
	EventLevelCleared                  // Last block removed
	EventGameOver                      // Lives exhausted
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall"
	case EventPaddleBounce:
		return "paddle"
	case EventBlockHit:
		return "block"
	case EventLifeLost:
		return "life-lost"
	case EventLevelCleared:
		return "level-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a single outcome emitted during a tick.
// Cue names the sound the embedding may play; empty means silent.
type Event struct {
	Kind EventKind
	Cue  string
}
