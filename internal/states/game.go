package states

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Game runs a variant's state machine behind the registry.Game interface.
type Game struct {
	variant Variant
	logger  *log.Logger
	sounds  Sounds
	rand    core.RandomSource // Overrides the seeded RNG when set

	ctx *Context
	dt  float64
	fps int
}

// NewGame wraps a variant. A nil logger means log.Default().
func NewGame(v Variant, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		variant: v,
		logger:  logger.WithPrefix(v.ID),
	}
}

// ID returns the variant ID.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the variant title.
func (g *Game) Title() string { return g.variant.Title }

// Settings returns the variant's loaded configuration.
func (g *Game) Settings() config.Common { return g.variant.Settings }

// SetSounds installs the cue bank used from the next Reset on.
func (g *Game) SetSounds(s Sounds) {
	g.sounds = s
	if g.ctx != nil && s != nil {
		g.ctx.Sounds = s
	}
}

// SetRandomSource replaces the seeded RNG from the next Reset on.
func (g *Game) SetRandomSource(r core.RandomSource) {
	g.rand = r
}

// Reset builds a new context and shows the welcome screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.fps = cfg.TickRate
	if g.fps <= 0 {
		g.fps = g.variant.Settings.FPS
	}
	g.dt = 1 / float64(g.fps)

	rng := g.rand
	if rng == nil {
		rng = core.NewSimpleRNG(cfg.Seed)
	}

	g.ctx = NewContext(g.variant, rng, g.sounds, g.logger)
	g.ctx.MoveTo(NewWelcome())
}

// TickRate returns the steps per second chosen by the last Reset.
func (g *Game) TickRate() int { return g.fps }

// Step delivers discrete presses to the active state, then advances it by
// one fixed delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ctx := g.ctx
	ctx.Input = in

	for _, a := range in.Pressed() {
		if a == core.ActionMute {
			if m, ok := ctx.Sounds.(Muter); ok {
				g.logger.Debug("mute toggled", "muted", m.ToggleMute())
			}
			continue
		}
		ctx.Machine.Current().KeyDown(ctx, a)
	}

	ctx.Machine.Current().Update(ctx, g.dt)

	return core.StepResult{
		State:  g.State(),
		Events: ctx.drainEvents(),
	}
}

// Render draws the active state. Drawing never mutates the simulation.
func (g *Game) Render(dst *core.Screen) {
	g.ctx.Machine.Current().Draw(g.ctx, dst)
}

// Current returns the active state.
func (g *Game) Current() State {
	return g.ctx.Machine.Current()
}

// Progress returns a copy of the level and lives counters.
func (g *Game) Progress() Progression {
	return g.ctx.Progress
}

// State reports the phase and counters.
func (g *Game) State() core.GameState {
	cur := g.ctx.Machine.Current()
	st := core.GameState{
		Phase:    kindOf(cur).String(),
		Level:    g.ctx.Progress.Level,
		Lives:    g.ctx.Progress.Lives,
		GameOver: kindOf(cur) == KindGameOver,
	}
	if p, ok := cur.(*Play); ok && p.sim != nil {
		st.Blocks = p.sim.BlocksLeft()
	}
	return st
}

// Snapshot returns the running field, or just the bounds outside of Play.
func (g *Game) Snapshot() core.FieldSnapshot {
	if p, ok := g.ctx.Machine.Current().(*Play); ok && p.sim != nil {
		return p.sim.Snapshot()
	}
	return core.FieldSnapshot{Bounds: g.ctx.Bounds}
}
