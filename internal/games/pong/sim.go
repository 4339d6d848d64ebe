// Package pong implements the Pong variant: one paddle and one ball, no
// blocks. The ball is kept in play as long as possible.
//
// Angles follow the unsigned convention: theta is in [0, 2*Pi) with y
// growing downward, so 3*Pi/2 is straight up and Pi/2 straight down.
package pong

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/states"
)

// Serve angles span 210 to 330 degrees, always upward.
var (
	serveMin = core.Deg(210)
	serveMax = core.Deg(330)
)

// Sim is the Pong field for one level.
type Sim struct {
	cues   config.Cues
	bounds core.Bounds

	spin               float64
	minAngle, maxAngle float64

	paddleSpeed float64
	ballSpeed   float64

	paddle   arkanoid.Paddle
	ball     arkanoid.Ball
	onPaddle bool
}

// NewSim sets up a field: paddle centered on the bottom edge, ball resting
// on it with a random serve angle.
func NewSim(cfg config.PongConfig, level int, b core.Bounds, rng core.RandomSource) *Sim {
	s := &Sim{
		cues:        cfg.Cues,
		bounds:      b,
		spin:        core.Deg(cfg.Spin.Degrees),
		minAngle:    core.Deg(cfg.Spin.MinAngle),
		maxAngle:    core.Deg(cfg.Spin.MaxAngle),
		paddleSpeed: cfg.PaddleSpeed(level),
		ballSpeed:   cfg.BallSpeed(level),
		paddle: arkanoid.Paddle{
			X:      b.Center().X,
			Y:      b.Bottom - cfg.Paddle.Height/2,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		ball: arkanoid.Ball{Radius: cfg.Ball.Radius},
	}
	s.paddle.LastX = s.paddle.X
	s.Respawn(rng)
	return s
}

// Step advances the field by dt in the same order as Arkanoid, minus the
// blocks. A miss at the bottom ends the step.
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

	for range s.walls() {
		emit(core.EventWallBounce, s.cues.Wall)
	}

	if s.ball.Y >= s.bounds.Bottom {
		out.LifeLost = true
		return out
	}

	if s.hitPaddle() {
		emit(core.EventPaddleBounce, s.cues.Paddle)
	}
	return out
}

// walls reflects off the left, right and top edges. As in Arkanoid a wall
// only turns a ball still heading into it, rather than on every step the
// ball sits past the edge, so a steep ball cannot stick to a wall.
func (s *Sim) walls() int {
	n := 0
	b := &s.ball
	if b.X <= s.bounds.Left && math.Cos(b.Theta) < 0 {
		b.Theta = core.NormalizeUnsigned(math.Pi - b.Theta)
		n++
	}
	if b.X >= s.bounds.Right && math.Cos(b.Theta) > 0 {
		b.Theta = core.NormalizeUnsigned(math.Pi - b.Theta)
		n++
	}
	if b.Y <= s.bounds.Top && math.Sin(b.Theta) < 0 {
		b.Theta = core.NormalizeUnsigned(2*math.Pi - b.Theta)
		n++
	}
	return n
}

// hitPaddle flips the ball up off the paddle and bends it toward the
// paddle's motion. Contact is debounced like Arkanoid's.
func (s *Sim) hitPaddle() bool {
	if !core.RectOverlap(s.paddle.Center(), s.paddle.Size(), s.ball.Center(), s.ball.Size()) {
		s.onPaddle = false
		return false
	}
	if s.onPaddle {
		return false
	}
	s.onPaddle = true
	s.ball.Theta = SpinAngle(s.ball.Theta, s.paddle.LastX-s.paddle.X, s.spin, s.minAngle, s.maxAngle)
	return true
}

// SpinAngle returns the outgoing angle for a ball arriving at theta on a
// paddle that moved by -delta this step (delta is LastX - X). The ball is
// flipped vertically, turned by spin toward the paddle's motion and clamped
// to [lo, hi].
func SpinAngle(theta, delta, spin, lo, hi float64) float64 {
	out := core.NormalizeUnsigned(2*math.Pi - theta)
	switch {
	case delta < 0:
		out += spin
	case delta > 0:
		out -= spin
	}
	return core.ClampF(out, lo, hi)
}

// Respawn rests the ball on the paddle center with a fresh serve angle.
func (s *Sim) Respawn(rng core.RandomSource) {
	s.ball.Place(s.paddle.X, s.paddle.Top()-s.ball.Radius)
	s.ball.Theta = core.Uniform(rng, serveMin, serveMax)
	s.onPaddle = false
}

// Snapshot returns value copies of the paddle and ball.
func (s *Sim) Snapshot() core.FieldSnapshot {
	return core.FieldSnapshot{
		Bounds: s.bounds,
		Paddle: core.Body{X: s.paddle.X, Y: s.paddle.Y, W: s.paddle.Width, H: s.paddle.Height, Color: core.ColorGray},
		Ball:   core.Body{X: s.ball.X, Y: s.ball.Y, W: 2 * s.ball.Radius, H: 2 * s.ball.Radius, Color: core.ColorBrightRed},
		Theta:  s.ball.Theta,
	}
}

// BlocksLeft is always zero; Pong has no blocks and never clears a level.
func (s *Sim) BlocksLeft() int { return 0 }

// Ball returns a copy of the ball.
func (s *Sim) Ball() arkanoid.Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Sim) Paddle() arkanoid.Paddle { return s.paddle }
