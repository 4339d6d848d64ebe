package states

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// LevelIntro shows the level number and counts down before play.
// The countdown is driven by the frame delta so it is reproducible.
type LevelIntro struct {
	level     int
	countdown float64
	message   string
}

// NewLevelIntro creates the intro screen for a level.
func NewLevelIntro(level int) *LevelIntro {
	return &LevelIntro{level: level}
}

func (*LevelIntro) sealed() {}

// Kind returns KindLevelIntro.
func (*LevelIntro) Kind() Kind { return KindLevelIntro }

// Level returns the level being introduced.
func (s *LevelIntro) Level() int { return s.level }

// Remaining returns the seconds left on the countdown.
func (s *LevelIntro) Remaining() float64 { return s.countdown }

// Message returns the countdown digit currently shown.
func (s *LevelIntro) Message() string { return s.message }

// Enter starts the countdown.
func (s *LevelIntro) Enter(ctx *Context) {
	s.countdown = ctx.Variant.Settings.Gameplay.IntroSeconds
	s.message = s.digit(s.countdown)
}

// Leave does nothing.
func (s *LevelIntro) Leave(*Context) {}

// Update counts down and starts play once the countdown is spent.
func (s *LevelIntro) Update(ctx *Context, dt float64) {
	s.countdown -= dt
	if s.countdown <= 0 {
		ctx.MoveTo(NewPlay(s.level))
		return
	}
	s.message = s.digit(s.countdown)
}

// digit returns the whole seconds left, rounded up, never below 1.
func (s *LevelIntro) digit(remaining float64) string {
	return strconv.Itoa(max(int(math.Ceil(remaining)), 1))
}

// KeyDown ignores input during the countdown.
func (s *LevelIntro) KeyDown(*Context, core.Action) {}

// Draw renders the level banner and countdown.
func (s *LevelIntro) Draw(_ *Context, dst *core.Screen) {
	mid := dst.Height() / 2
	drawCentered(dst, mid-1, fmt.Sprintf("Level %d", s.level), core.ColorYellow)
	drawCentered(dst, mid+1, "Ready in "+s.message, core.ColorWhite)
}
