package states

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	lifeWidth = 18 // Life marker width in field units
	lifeGap   = 5
)

// Viewport maps canvas coordinates onto screen cells.
type Viewport struct {
	sx, sy float64
}

// NewViewport scales the whole canvas onto dst.
func NewViewport(canvas config.Dimensions, dst *core.Screen) Viewport {
	v := Viewport{sx: 1, sy: 1}
	if canvas.Width > 0 {
		v.sx = float64(dst.Width()) / canvas.Width
	}
	if canvas.Height > 0 {
		v.sy = float64(dst.Height()) / canvas.Height
	}
	return v
}

// X maps a canvas x coordinate to a column.
func (v Viewport) X(x float64) int {
	return int(math.Floor(x * v.sx))
}

// Y maps a canvas y coordinate to a row.
func (v Viewport) Y(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Box maps a center-anchored canvas box to cells, at least one cell in size.
func (v Viewport) Box(b core.Body) core.Rect {
	x0, x1 := v.X(b.X-b.W/2), v.X(b.X+b.W/2)
	y0, y1 := v.Y(b.Y-b.H/2), v.Y(b.Y+b.H/2)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Edges maps field bounds to the outline rectangle.
func (v Viewport) Edges(b core.Bounds) core.Rect {
	x0, x1 := v.X(b.Left), v.X(b.Right)
	y0, y1 := v.Y(b.Top), v.Y(b.Bottom)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// drawField paints a snapshot. It reads copies only.
func drawField(ctx *Context, dst *core.Screen, snap core.FieldSnapshot, level int) {
	v := NewViewport(ctx.Variant.Settings.Canvas, dst)
	b := snap.Bounds

	dst.DrawBox(v.Edges(b), core.ColorWhite)

	for _, blk := range snap.Blocks {
		dst.FillRect(v.Box(blk), '█', blk.Color)
	}

	dst.FillRect(v.Box(snap.Paddle), '▀', core.ColorGray)
	dst.SetColored(v.X(snap.Ball.X), v.Y(snap.Ball.Y), '●', core.ColorBrightRed)

	// Lives sit under the bottom-right corner, right to left.
	row := v.Y(b.Bottom) + 1
	for i := 0; i < ctx.Progress.Lives; i++ {
		right := b.Right - float64(i)*(lifeWidth+lifeGap)
		x0, x1 := v.X(right-lifeWidth), v.X(right)
		dst.FillRect(core.NewRect(x0, row, max(x1-x0, 1), 1), '▬', core.ColorGray)
	}

	hud := fmt.Sprintf(" %s  Level %d  Lives %d ", ctx.Variant.Title, level, ctx.Progress.Lives)
	dst.DrawTextColored(v.X(b.Left)+2, v.Y(b.Top), hud, core.ColorCyan)
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
