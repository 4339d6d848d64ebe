package arkanoid

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const dt = 0.02

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestSim builds a level 1 field on the default 450x480 canvas.
// Bounds are left 50, top 40, right 400, bottom 440.
func newTestSim(t *testing.T, rng core.RandomSource) *Sim {
	t.Helper()
	cfg := config.DefaultArkanoidConfig()
	b := core.CenteredBounds(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Field.Width, cfg.Field.Height)
	if rng == nil {
		rng = &core.FixedSource{Values: []float64{0.5}}
	}
	return NewSim(cfg, 1, b, rng)
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestNewSimLayout(t *testing.T) {
	s := newTestSim(t, nil)

	if s.BlocksLeft() != 52 {
		t.Errorf("BlocksLeft = %d, expected 13 columns x 4 rows", s.BlocksLeft())
	}

	p := s.Paddle()
	if p.X != 225 || p.Y != 432 {
		t.Errorf("paddle at (%v, %v), expected (225, 432)", p.X, p.Y)
	}

	b := s.Ball()
	if b.X != 225 || b.Y != 420 {
		t.Errorf("ball at (%v, %v), expected (225, 420)", b.X, b.Y)
	}
	if !approx(b.Theta, -math.Pi/2) {
		t.Errorf("theta = %v, expected -Pi/2 from a 0.5 draw", b.Theta)
	}
}

func TestFreeFlightOnlyMovesBall(t *testing.T) {
	for _, theta := range []float64{-2.5, -1, -0.1, 0.4, 1.5, 2.8, math.Pi} {
		s := newTestSim(t, nil)
		s.ball.Place(225, 300)
		s.ball.Theta = theta
		speed := s.ballSpeed

		out := s.Step(core.NewInputFrame(), dt)

		b := s.Ball()
		if b.Theta != theta {
			t.Errorf("theta %v changed to %v in free flight", theta, b.Theta)
		}
		if !approx(b.X, 225+dt*speed*math.Cos(theta)) || !approx(b.Y, 300+dt*speed*math.Sin(theta)) {
			t.Errorf("theta %v: ball at (%v, %v)", theta, b.X, b.Y)
		}
		if b.LastX != 225 || b.LastY != 300 {
			t.Errorf("last position = (%v, %v), expected (225, 300)", b.LastX, b.LastY)
		}
		if len(out.Events) != 0 || out.LifeLost || out.LevelCleared {
			t.Errorf("theta %v: unexpected outcome %+v", theta, out)
		}
		if s.BlocksLeft() != 52 {
			t.Errorf("blocks changed in free flight")
		}
	}
}

func TestPaddleMovesAndClamps(t *testing.T) {
	s := newTestSim(t, nil)
	s.ball.Place(225, 300)

	s.Step(held(core.ActionRight), dt)
	p := s.Paddle()
	if !approx(p.X, 225+dt*s.paddleSpeed) || p.LastX != 225 {
		t.Errorf("paddle X = %v (last %v) after one right step", p.X, p.LastX)
	}

	for i := 0; i < 100; i++ {
		s.Step(held(core.ActionLeft), dt)
		s.ball.Place(225, 300)
	}
	if p := s.Paddle(); p.X != 80 {
		t.Errorf("paddle X = %v, expected clamp at left + width/2 = 80", p.X)
	}

	for i := 0; i < 100; i++ {
		s.Step(held(core.ActionRight), dt)
		s.ball.Place(225, 300)
	}
	if p := s.Paddle(); p.X != 370 {
		t.Errorf("paddle X = %v, expected clamp at right - width/2 = 370", p.X)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		theta  float64
		want   float64
		bounce int
	}{
		{"left wall", 52, 300, -2.5, -math.Pi + 2.5, 1},
		{"right wall", 398, 300, -0.5, math.Pi + 0.5 - 2*math.Pi, 1},
		{"top wall", 225, 43, -math.Pi / 2, math.Pi / 2, 1},
		{"top left corner", 51, 41, -3 * math.Pi / 4, math.Pi / 4, 2},
		{"past left wall heading away", 40, 300, -0.5, -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, nil)
			s.ball.Place(tt.x, tt.y)
			s.ball.Theta = tt.theta

			out := s.Step(core.NewInputFrame(), dt)

			if got := s.Ball().Theta; !approx(got, tt.want) {
				t.Errorf("theta = %v, expected %v", got, tt.want)
			}
			if got := s.Ball().Theta; got <= -math.Pi || got > math.Pi {
				t.Errorf("theta %v left (-Pi, Pi]", got)
			}
			if len(out.Events) != tt.bounce {
				t.Fatalf("events = %v, expected %d wall bounces", kinds(out.Events), tt.bounce)
			}
			for _, e := range out.Events {
				if e.Kind != core.EventWallBounce || e.Cue != "pong" {
					t.Errorf("event = %+v, expected wall bounce with pong cue", e)
				}
			}
		})
	}
}

func TestDoubleVerticalReflectionIsIdentity(t *testing.T) {
	for theta := -math.Pi + 0.01; theta <= math.Pi; theta += 0.05 {
		if got := core.ReflectVertical(core.ReflectVertical(theta)); got != theta {
			t.Errorf("reflect(reflect(%v)) = %v", theta, got)
		}
		if got := reflectFromSide(reflectFromSide(theta, SideTop), SideBottom); !approx(got, theta) {
			t.Errorf("top then bottom face on %v = %v", theta, got)
		}
	}
}

func TestSteepBallLeavesWall(t *testing.T) {
	s := newTestSim(t, nil)
	s.ball.Place(49, 300)
	s.ball.Theta = -math.Pi/2 - 0.05

	bounces := 0
	for i := 0; i < 10; i++ {
		out := s.Step(core.NewInputFrame(), dt)
		for _, e := range out.Events {
			if e.Kind == core.EventWallBounce {
				bounces++
			}
		}
	}

	b := s.Ball()
	if bounces != 1 {
		t.Errorf("wall bounces = %d, expected 1", bounces)
	}
	if math.Cos(b.Theta) <= 0 {
		t.Errorf("theta = %v, expected the ball heading right", b.Theta)
	}
	if b.X <= s.bounds.Left {
		t.Errorf("ball x = %v, expected back inside %v", b.X, s.bounds.Left)
	}
}

func TestPaddleAngleMonotonic(t *testing.T) {
	const maxDiff = 34.0
	prev := math.Inf(-1)
	for diff := -2 * maxDiff; diff <= 2*maxDiff; diff += 0.25 {
		got := PaddleAngle(diff, maxDiff)
		if got < prev {
			t.Fatalf("PaddleAngle(%v) = %v dropped below %v", diff, got, prev)
		}
		if got >= 0 || got <= -math.Pi {
			t.Fatalf("PaddleAngle(%v) = %v is not upward", diff, got)
		}
		prev = got
	}

	// No jump at the clamps.
	if !approx(PaddleAngle(maxDiff, maxDiff), -MaxDeflection) {
		t.Errorf("right edge = %v, expected %v", PaddleAngle(maxDiff, maxDiff), -MaxDeflection)
	}
	if !approx(PaddleAngle(-maxDiff, maxDiff), -math.Pi+MaxDeflection) {
		t.Errorf("left edge = %v, expected %v", PaddleAngle(-maxDiff, maxDiff), -math.Pi+MaxDeflection)
	}
	if PaddleAngle(0, maxDiff) != -math.Pi/2 {
		t.Errorf("center = %v, expected -Pi/2", PaddleAngle(0, maxDiff))
	}
}

func TestPaddleAngleEdgesExact(t *testing.T) {
	tests := []struct {
		name     string
		maxDiff  float64
		expected float64
		diffs    func(m float64) []float64
	}{
		{"right edge", 34, -MaxDeflection, func(m float64) []float64 {
			return []float64{math.Nextafter(m, 0), m, math.Nextafter(m, math.Inf(1))}
		}},
		{"left edge", 34, -math.Pi + MaxDeflection, func(m float64) []float64 {
			return []float64{-math.Nextafter(m, math.Inf(1)), -m, -math.Nextafter(m, 0)}
		}},
		{"right edge, odd width", 38.5, -MaxDeflection, func(m float64) []float64 {
			return []float64{math.Nextafter(m, 0), m, math.Nextafter(m, math.Inf(1))}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diffs := tt.diffs(tt.maxDiff)
			prev := math.Inf(-1)
			for _, d := range diffs {
				got := PaddleAngle(d, tt.maxDiff)
				if got < prev {
					t.Errorf("PaddleAngle(%v) = %v dropped below %v", d, got, prev)
				}
				if got < -math.Pi+MaxDeflection || got > -MaxDeflection {
					t.Errorf("PaddleAngle(%v) = %v outside the clamp range", d, got)
				}
				prev = got
			}
			if got := PaddleAngle(diffs[1], tt.maxDiff); got != tt.expected {
				t.Errorf("PaddleAngle at the edge = %v, expected exactly %v", got, tt.expected)
			}
		})
	}
}

func TestPaddleCenterHitGoesStraightUp(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	b := core.Bounds{Left: 0, Top: 0, Right: 350, Bottom: 400}
	s := NewSim(cfg, 1, b, &core.FixedSource{})

	if s.Paddle().X != 175 {
		t.Fatalf("paddle X = %v, expected 175", s.Paddle().X)
	}

	// Paddle top is 384; the ball box reaches it after one step down.
	s.ball.Place(175, 379)
	s.ball.Theta = math.Pi / 2

	out := s.Step(core.NewInputFrame(), dt)

	if got := s.Ball().Theta; !approx(got, -math.Pi/2) {
		t.Errorf("theta = %v, expected -Pi/2", got)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != core.EventPaddleBounce || out.Events[0].Cue != "pong" {
		t.Errorf("events = %+v, expected one paddle bounce", out.Events)
	}
}

func TestPaddleDebounce(t *testing.T) {
	s := newTestSim(t, nil)
	s.ball.Place(240, 417)
	s.ball.Theta = math.Pi / 2

	out := s.Step(core.NewInputFrame(), dt)
	if len(out.Events) != 1 || out.Events[0].Kind != core.EventPaddleBounce {
		t.Fatalf("first contact events = %v", kinds(out.Events))
	}

	// Still overlapping: a second contact must not turn the ball again.
	s.ball.Theta = 1.0
	out = s.Step(core.NewInputFrame(), 0.001)
	if len(out.Events) != 0 || s.Ball().Theta != 1.0 {
		t.Errorf("repeat contact resolved: theta %v events %v", s.Ball().Theta, kinds(out.Events))
	}

	// Leave the paddle, then come back.
	s.ball.Place(240, 300)
	s.Step(core.NewInputFrame(), 0.001)
	s.ball.Place(240, 417)
	s.ball.Theta = math.Pi / 2
	out = s.Step(core.NewInputFrame(), dt)
	if len(out.Events) != 1 || out.Events[0].Kind != core.EventPaddleBounce {
		t.Errorf("contact after release events = %v", kinds(out.Events))
	}
}

func TestBlockHitFromBelow(t *testing.T) {
	s := newTestSim(t, nil)
	target := s.blocks[len(s.blocks)-8] // Bottom row, column 5
	s.ball.Place(target.X, target.Y+target.Height/2+6.75)
	s.ball.Theta = -math.Pi / 2

	out := s.Step(core.NewInputFrame(), dt)

	if s.BlocksLeft() != 51 {
		t.Fatalf("BlocksLeft = %d, expected 51", s.BlocksLeft())
	}
	for _, k := range s.blocks {
		if k.Depth == target.Depth && k.Column == target.Column {
			t.Error("struck block still present")
		}
	}
	if got := s.Ball().Theta; !approx(got, math.Pi/2) {
		t.Errorf("theta = %v, expected Pi/2 after bottom face", got)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != core.EventBlockHit || out.Events[0].Cue != "beep" {
		t.Errorf("events = %+v, expected one block hit", out.Events)
	}
}

func TestOneBlockPerStep(t *testing.T) {
	s := newTestSim(t, nil)
	first, second := s.blocks[0], s.blocks[1]

	// Straddle the gap between the first two blocks of the top row.
	gap := (first.X + first.Width/2 + second.X - second.Width/2) / 2
	s.ball.Place(gap, first.Y)
	s.ball.Theta = -math.Pi / 2

	if !core.RectOverlap(first.Center(), first.Size(), s.ball.Center(), s.ball.Size()) ||
		!core.RectOverlap(second.Center(), second.Size(), s.ball.Center(), s.ball.Size()) {
		t.Fatal("ball should overlap both blocks")
	}

	out := s.Step(core.NewInputFrame(), 0)

	if s.BlocksLeft() != 51 {
		t.Fatalf("BlocksLeft = %d, expected exactly one removal", s.BlocksLeft())
	}
	if s.blocks[0].Column != 1 || s.blocks[0].Depth != 0 {
		t.Errorf("first block in collection order should be the one removed")
	}
	// No swept path, so no face matched and the ball keeps its heading.
	if s.Ball().Theta != -math.Pi/2 {
		t.Errorf("theta = %v, expected unchanged", s.Ball().Theta)
	}
	if len(out.Events) != 1 {
		t.Errorf("events = %v, expected one block hit", kinds(out.Events))
	}
}

func TestLevelCleared(t *testing.T) {
	s := newTestSim(t, nil)
	s.blocks = []Block{{X: 225, Y: 200, Width: 25, Height: 17}}
	s.ball.Place(225, 215)
	s.ball.Theta = -math.Pi / 2

	out := s.Step(core.NewInputFrame(), dt)

	if !out.LevelCleared {
		t.Fatal("removing the last block should clear the level")
	}
	want := []core.EventKind{core.EventBlockHit, core.EventLevelCleared}
	got := kinds(out.Events)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, expected %v", got, want)
	}
}

func TestBottomMissEndsStep(t *testing.T) {
	s := newTestSim(t, nil)
	s.ball.Place(225, 437)
	s.ball.Theta = math.Pi / 2

	out := s.Step(core.NewInputFrame(), dt)

	if !out.LifeLost {
		t.Fatal("expected LifeLost")
	}
	if len(out.Events) != 0 {
		t.Errorf("no paddle test should run after a miss, got %v", kinds(out.Events))
	}
	if s.Ball().Theta != math.Pi/2 {
		t.Errorf("theta = %v, the bottom does not reflect", s.Ball().Theta)
	}
	if s.BlocksLeft() != 52 {
		t.Errorf("blocks changed on a miss")
	}
}

func TestRespawn(t *testing.T) {
	src := &core.FixedSource{Values: []float64{0, 0.999}}
	s := newTestSim(t, src)

	if !approx(s.Ball().Theta, -math.Pi/6) {
		t.Errorf("first launch = %v, expected -Pi/6 from a 0 draw", s.Ball().Theta)
	}

	s.paddle.X = 300
	s.resolver.onPaddle = true
	blocks := s.BlocksLeft()

	s.Respawn(src)

	b := s.Ball()
	if b.X != 300 || b.Y != 432-8-4 {
		t.Errorf("respawn at (%v, %v), expected (300, 420)", b.X, b.Y)
	}
	if b.LastX != b.X || b.LastY != b.Y {
		t.Error("respawn should not leave a swept path")
	}
	if b.Theta < -5*math.Pi/6 || b.Theta > -math.Pi/6 {
		t.Errorf("launch angle %v outside [-5Pi/6, -Pi/6]", b.Theta)
	}
	if s.resolver.onPaddle {
		t.Error("respawn should clear paddle contact")
	}
	if s.BlocksLeft() != blocks {
		t.Error("respawn changed the blocks")
	}
}

func TestLaunchAngleRange(t *testing.T) {
	rng := core.NewSimpleRNG(99)
	s := newTestSim(t, rng)
	for i := 0; i < 500; i++ {
		s.Respawn(rng)
		if th := s.Ball().Theta; th < -5*math.Pi/6 || th > -math.Pi/6 {
			t.Fatalf("launch angle %v outside [-150, -30] degrees", th)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSim(t, nil)
	snap := s.Snapshot()

	snap.Blocks[0].X = -1
	snap.Ball.X = -1
	if s.blocks[0].X == -1 || s.ball.X == -1 {
		t.Error("mutating a snapshot reached the simulation")
	}
	if snap.Blocks[0].Color != core.ColorRed || snap.Blocks[len(snap.Blocks)-1].Color != core.ColorGreen {
		t.Error("blocks should be colored red, blue, yellow, green by row")
	}
	if snap.Ball.W != 8 {
		t.Errorf("ball body width = %v, expected 2 * radius", snap.Ball.W)
	}
}
