package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/states"
)

// Launch angles span -150 to -30 degrees, always upward.
const (
	launchMin = -5 * math.Pi / 6
	launchMax = -math.Pi / 6
)

// Sim is the play field for one level.
type Sim struct {
	cues     config.Cues
	bounds   core.Bounds
	resolver *Resolver

	paddleSpeed float64
	ballSpeed   float64

	paddle Paddle
	ball   Ball
	blocks []Block
}

// NewSim lays out a level: paddle centered on the bottom edge, ball
// resting on it with a random launch angle, full block grid.
func NewSim(cfg config.ArkanoidConfig, level int, b core.Bounds, rng core.RandomSource) *Sim {
	s := &Sim{
		cues:        cfg.Cues,
		bounds:      b,
		resolver:    NewResolver(b),
		paddleSpeed: cfg.PaddleSpeed(level),
		ballSpeed:   cfg.BallSpeed(level),
		paddle: Paddle{
			X:      b.Center().X,
			Y:      b.Bottom - cfg.Paddle.Height/2,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		ball:   Ball{Radius: cfg.Ball.Radius},
		blocks: Layout(b, cfg.Blocks),
	}
	s.paddle.LastX = s.paddle.X
	s.Respawn(rng)
	return s
}

// Step advances the field by dt. Order: paddle, ball, walls, bottom,
// paddle contact, blocks, level check. A miss at the bottom ends the step.
func (s *Sim) Step(in core.InputFrame, dt float64) states.Outcome {
	var out states.Outcome
	emit := func(kind core.EventKind, cue string) {
		out.Events = append(out.Events, core.Event{Kind: kind, Cue: cue})
	}

	s.paddle.LastX = s.paddle.X
	if in.IsHeld(core.ActionLeft) {
		s.paddle.X -= dt * s.paddleSpeed
	}
	if in.IsHeld(core.ActionRight) {
		s.paddle.X += dt * s.paddleSpeed
	}
	s.paddle.Clamp(s.bounds)

	s.ball.Advance(dt, s.ballSpeed)

	for range s.resolver.Walls(&s.ball) {
		emit(core.EventWallBounce, s.cues.Wall)
	}

	if s.resolver.PassedBottom(s.ball) {
		out.LifeLost = true
		return out
	}

	if s.resolver.Paddle(&s.ball, s.paddle) {
		emit(core.EventPaddleBounce, s.cues.Paddle)
	}

	if i, _ := s.resolver.Blocks(&s.ball, s.blocks); i >= 0 {
		s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
		emit(core.EventBlockHit, s.cues.Block)
	}

	if len(s.blocks) == 0 {
		out.LevelCleared = true
		emit(core.EventLevelCleared, "")
	}
	return out
}

// Respawn rests the ball on the paddle center and draws a new launch angle.
// Level and blocks are untouched.
func (s *Sim) Respawn(rng core.RandomSource) {
	s.ball.Place(s.paddle.X, s.paddle.Top()-s.ball.Radius)
	s.ball.Theta = core.Uniform(rng, launchMax, launchMin)
	s.resolver.Release()
}

// Snapshot returns value copies of the paddle, ball and blocks.
func (s *Sim) Snapshot() core.FieldSnapshot {
	snap := core.FieldSnapshot{
		Bounds: s.bounds,
		Paddle: core.Body{X: s.paddle.X, Y: s.paddle.Y, W: s.paddle.Width, H: s.paddle.Height, Color: core.ColorGray},
		Ball:   core.Body{X: s.ball.X, Y: s.ball.Y, W: 2 * s.ball.Radius, H: 2 * s.ball.Radius, Color: core.ColorBrightRed},
		Theta:  s.ball.Theta,
		Blocks: make([]core.Body, len(s.blocks)),
	}
	for i, k := range s.blocks {
		snap.Blocks[i] = k.Body()
	}
	return snap
}

// BlocksLeft returns the number of blocks still standing.
func (s *Sim) BlocksLeft() int {
	return len(s.blocks)
}

// Ball returns a copy of the ball.
func (s *Sim) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Sim) Paddle() Paddle { return s.paddle }
