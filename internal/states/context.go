// Package states implements the outer game flow shared by every bat-and-ball
// variant: Welcome, LevelIntro, Play and GameOver, the context threaded
// through them, and an adapter exposing the whole machine as a registry game.
package states

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Simulation is one running play field, created on entering Play.
type Simulation interface {
	// Step advances the field by dt seconds using the held movement keys.
	Step(in core.InputFrame, dt float64) Outcome

	// Respawn puts the ball back above the paddle with a fresh launch angle.
	Respawn(rng core.RandomSource)

	// Snapshot returns value copies of every drawable body.
	Snapshot() core.FieldSnapshot

	// BlocksLeft returns how many blocks remain (always 0 without blocks).
	BlocksLeft() int
}

// Outcome is what a single simulation step reports back to Play.
type Outcome struct {
	Events       []core.Event
	LifeLost     bool // Ball passed the bottom wall; nothing else was tested
	LevelCleared bool // The last block was removed this step
}

// Variant describes a game built on this state machine.
type Variant struct {
	ID       string
	Title    string
	Settings config.Common

	// NewSim builds the play field for a level inside bounds.
	NewSim func(level int, bounds core.Bounds, rng core.RandomSource) Simulation
}

// Sounds is the named-cue playback boundary. Unknown or unloaded cues are
// skipped by the implementation.
type Sounds interface {
	Load(name string)
	Play(name string)
}

// Muter is implemented by sound banks that can be silenced.
type Muter interface {
	ToggleMute() bool
}

type silent struct{}

func (silent) Load(string) {}
func (silent) Play(string) {}

// Progression is the level and lives counters owned by the game.
type Progression struct {
	Level int
	Lives int

	initialLives int
}

// NewProgression starts at level 1 with the given lives.
func NewProgression(lives int) Progression {
	return Progression{Level: 1, Lives: lives, initialLives: lives}
}

// Reset restores level 1 and the initial lives.
func (p *Progression) Reset() {
	p.Level = 1
	p.Lives = p.initialLives
}

// Context is the explicit handle threaded through every state call.
type Context struct {
	Variant  Variant
	Bounds   core.Bounds
	Progress Progression
	Sounds   Sounds
	Rand     core.RandomSource
	Log      *log.Logger
	Machine  *Machine

	// Input is the frame being processed by the current tick.
	Input core.InputFrame

	events []core.Event
}

// NewContext builds a context for a variant. Nil sounds or logger are
// replaced by silent and default implementations.
func NewContext(v Variant, rng core.RandomSource, sounds Sounds, logger *log.Logger) *Context {
	if sounds == nil {
		sounds = silent{}
	}
	if logger == nil {
		logger = log.Default()
	}
	s := v.Settings
	return &Context{
		Variant:  v,
		Bounds:   core.CenteredBounds(s.Canvas.Width, s.Canvas.Height, s.Field.Width, s.Field.Height),
		Progress: NewProgression(s.Gameplay.Lives),
		Sounds:   sounds,
		Rand:     rng,
		Log:      logger,
		Machine:  &Machine{},
		Input:    core.NewInputFrame(),
	}
}

// Cues returns the variant's cue names.
func (c *Context) Cues() config.Cues {
	return c.Variant.Settings.Cues
}

// Emit records an event for this tick and plays its cue.
func (c *Context) Emit(e core.Event) {
	c.events = append(c.events, e)
	if e.Cue != "" {
		c.Sounds.Play(e.Cue)
	}
}

// MoveTo replaces the active state.
func (c *Context) MoveTo(s State) {
	c.Log.Debug("state transition", "from", kindOf(c.Machine.Current()), "to", s.Kind())
	c.Machine.MoveTo(c, s)
}

// drainEvents returns and clears the events recorded since the last call.
func (c *Context) drainEvents() []core.Event {
	out := c.events
	c.events = nil
	return out
}

func kindOf(s State) Kind {
	if s == nil {
		return KindNone
	}
	return s.Kind()
}
