package states

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// GameOver waits for a restart.
type GameOver struct {
	reached int
}

// NewGameOver creates the game over screen.
func NewGameOver() *GameOver {
	return &GameOver{}
}

func (*GameOver) sealed() {}

// Kind returns KindGameOver.
func (*GameOver) Kind() Kind { return KindGameOver }

// Enter plays the game over cue.
func (g *GameOver) Enter(ctx *Context) {
	g.reached = ctx.Progress.Level
	ctx.Emit(core.Event{Kind: core.EventGameOver, Cue: ctx.Cues().GameOver})
	ctx.Log.Info("game over", "level", g.reached)
}

// Leave does nothing.
func (g *GameOver) Leave(*Context) {}

// Update does nothing.
func (g *GameOver) Update(*Context, float64) {}

// KeyDown restarts from level 1 with full lives on Confirm.
func (g *GameOver) KeyDown(ctx *Context, a core.Action) {
	if a != core.ActionConfirm {
		return
	}
	ctx.Progress.Reset()
	ctx.MoveTo(NewLevelIntro(ctx.Progress.Level))
}

// Draw renders the game over banner.
func (g *GameOver) Draw(_ *Context, dst *core.Screen) {
	mid := dst.Height() / 2
	drawCentered(dst, mid-2, "Game Over", core.ColorBrightRed)
	drawCentered(dst, mid, fmt.Sprintf("You reached level %d", g.reached), core.ColorGray)
	drawCentered(dst, mid+2, "Press 'Space' to play again.", core.ColorWhite)
}
