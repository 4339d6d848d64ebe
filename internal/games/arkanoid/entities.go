// Package arkanoid implements the Arkanoid variant: a paddle, one ball and
// a grid of blocks that are destroyed on contact.
//
// Angles follow the signed convention: theta is in (-Pi, Pi], measured from
// the positive x axis with y growing downward, so -Pi/2 is straight up.
package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Ball is the single ball in play.
type Ball struct {
	X, Y         float64 // Center
	LastX, LastY float64 // Center before the current step
	Radius       float64
	Theta        float64
}

// Advance records the previous position and moves along Theta.
func (b *Ball) Advance(dt, speed float64) {
	b.LastX, b.LastY = b.X, b.Y
	b.X += dt * speed * math.Cos(b.Theta)
	b.Y += dt * speed * math.Sin(b.Theta)
}

// Place moves the ball without leaving a swept path behind.
func (b *Ball) Place(x, y float64) {
	b.X, b.Y = x, y
	b.LastX, b.LastY = x, y
}

// Center returns the current center.
func (b Ball) Center() core.Vec2 { return core.V(b.X, b.Y) }

// Size returns the ball's bounding square.
func (b Ball) Size() core.Size { return core.Size{W: 2 * b.Radius, H: 2 * b.Radius} }

// corners returns the bounding box corners around a center, in the order
// top-left, top-right, bottom-left, bottom-right.
func (b Ball) corners(x, y float64) [4]core.Vec2 {
	r := b.Radius
	return [4]core.Vec2{
		core.V(x-r, y-r),
		core.V(x+r, y-r),
		core.V(x-r, y+r),
		core.V(x+r, y+r),
	}
}

// Paddle is the player's bat. It only moves horizontally.
type Paddle struct {
	X, Y          float64 // Center
	LastX         float64
	Width, Height float64
}

// Clamp keeps the whole paddle inside the horizontal bounds.
func (p *Paddle) Clamp(b core.Bounds) {
	p.X = core.ClampF(p.X, b.Left+p.Width/2, b.Right-p.Width/2)
}

// Top returns the y of the paddle's upper edge.
func (p Paddle) Top() float64 { return p.Y - p.Height/2 }

// Center returns the current center.
func (p Paddle) Center() core.Vec2 { return core.V(p.X, p.Y) }

// Size returns the paddle's box.
func (p Paddle) Size() core.Size { return core.Size{W: p.Width, H: p.Height} }

// Block is one destructible brick. Depth is its row from the top and
// Column its index from the left, both zero based.
type Block struct {
	X, Y          float64 // Center
	Width, Height float64
	Depth, Column int
	Color         core.Color
}

// Center returns the block center.
func (k Block) Center() core.Vec2 { return core.V(k.X, k.Y) }

// Size returns the block size.
func (k Block) Size() core.Size { return core.Size{W: k.Width, H: k.Height} }

// Body returns the block as a drawable copy.
func (k Block) Body() core.Body {
	return core.Body{X: k.X, Y: k.Y, W: k.Width, H: k.Height, Color: k.Color}
}
