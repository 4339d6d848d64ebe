package states

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Welcome is the title screen.
type Welcome struct{}

// NewWelcome creates the title screen state.
func NewWelcome() *Welcome {
	return &Welcome{}
}

func (*Welcome) sealed() {}

// Kind returns KindWelcome.
func (*Welcome) Kind() Kind { return KindWelcome }

// Enter starts loading every cue the variant uses.
func (w *Welcome) Enter(ctx *Context) {
	for _, name := range ctx.Cues().Names() {
		ctx.Sounds.Load(name)
	}
}

// Leave does nothing.
func (w *Welcome) Leave(*Context) {}

// Update does nothing; the screen waits for Confirm.
func (w *Welcome) Update(*Context, float64) {}

// KeyDown starts the first level on Confirm.
func (w *Welcome) KeyDown(ctx *Context, a core.Action) {
	if a == core.ActionConfirm {
		ctx.MoveTo(NewLevelIntro(ctx.Progress.Level))
	}
}

// Draw renders the title and start prompt.
func (w *Welcome) Draw(ctx *Context, dst *core.Screen) {
	mid := dst.Height() / 2
	drawCentered(dst, mid-2, ctx.Variant.Title, core.ColorYellow)
	drawCentered(dst, mid, "Press 'Space' to start.", core.ColorWhite)
	drawCentered(dst, mid+2, "←/→ move   M mute   Q quit", core.ColorGray)
}
