package states

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Play runs the simulation for one level.
type Play struct {
	level int
	sim   Simulation
}

// NewPlay creates the play state for a level.
func NewPlay(level int) *Play {
	return &Play{level: level}
}

func (*Play) sealed() {}

// Kind returns KindPlay.
func (*Play) Kind() Kind { return KindPlay }

// Level returns the level being played.
func (p *Play) Level() int { return p.level }

// Sim returns the running simulation (nil before Enter).
func (p *Play) Sim() Simulation { return p.sim }

// Enter builds a fresh field: paddle, ball and blocks are recreated.
func (p *Play) Enter(ctx *Context) {
	p.sim = ctx.Variant.NewSim(p.level, ctx.Bounds, ctx.Rand)
	ctx.Log.Debug("level started", "level", p.level, "blocks", p.sim.BlocksLeft(), "lives", ctx.Progress.Lives)
}

// Leave does nothing.
func (p *Play) Leave(*Context) {}

// KeyDown ignores discrete presses; movement is read from held keys.
func (p *Play) KeyDown(*Context, core.Action) {}

// Update steps the simulation and applies life and level transitions.
func (p *Play) Update(ctx *Context, dt float64) {
	out := p.sim.Step(ctx.Input, dt)
	for _, e := range out.Events {
		ctx.Emit(e)
	}

	switch {
	case out.LifeLost:
		p.loseLife(ctx)
	case out.LevelCleared:
		ctx.Progress.Level++
		ctx.Log.Info("level cleared", "next", ctx.Progress.Level, "lives", ctx.Progress.Lives)
		ctx.MoveTo(NewLevelIntro(ctx.Progress.Level))
	}
}

func (p *Play) loseLife(ctx *Context) {
	ctx.Progress.Lives--
	if ctx.Progress.Lives <= 0 {
		ctx.Progress.Lives = 0
		ctx.Emit(core.Event{Kind: core.EventLifeLost})
		ctx.MoveTo(NewGameOver())
		return
	}

	ctx.Emit(core.Event{Kind: core.EventLifeLost, Cue: ctx.Cues().LifeLost})
	p.sim.Respawn(ctx.Rand)
	ctx.Log.Debug("life lost", "lives", ctx.Progress.Lives)
}

// Draw renders the field, the life indicator and the HUD.
func (p *Play) Draw(ctx *Context, dst *core.Screen) {
	drawField(ctx, dst, p.sim.Snapshot(), p.level)
}
