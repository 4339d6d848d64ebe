package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// MaxDeflection is how far from horizontal a ball leaving the paddle edge
// can be bent.
const MaxDeflection = math.Pi / 6

// Wall identifies a field edge.
type Wall int

const (
	WallLeft Wall = iota
	WallRight
	WallTop
)

// Side identifies which face of a block was struck.
type Side int

const (
	SideNone Side = iota
	SideBottom
	SideRight
	SideLeft
	SideTop
)

// String returns the face name.
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	default:
		return "none"
	}
}

// Resolver decides what the ball hit this step and turns it. It carries
// the paddle contact flag between steps.
type Resolver struct {
	bounds   core.Bounds
	onPaddle bool
}

// NewResolver creates a resolver for a field.
func NewResolver(b core.Bounds) *Resolver {
	return &Resolver{bounds: b}
}

// Release forgets any paddle contact, e.g. after a respawn.
func (r *Resolver) Release() {
	r.onPaddle = false
}

// Walls reflects the ball off the left, right and top walls, in that
// order, and returns the walls it touched. Unlike a bare crossing test, a
// wall only turns a ball that is still heading into it: without that check a
// ball that ends a step past the edge at a steep angle is flipped back and
// forth and sticks to the wall.
func (r *Resolver) Walls(b *Ball) []Wall {
	var hits []Wall
	if b.X <= r.bounds.Left && math.Cos(b.Theta) < 0 {
		b.Theta = core.NormalizeSigned(core.ReflectLeft(b.Theta))
		hits = append(hits, WallLeft)
	}
	if b.X >= r.bounds.Right && math.Cos(b.Theta) > 0 {
		b.Theta = core.NormalizeSigned(core.ReflectRight(b.Theta))
		hits = append(hits, WallRight)
	}
	if b.Y <= r.bounds.Top && math.Sin(b.Theta) < 0 {
		b.Theta = core.NormalizeSigned(core.ReflectVertical(b.Theta))
		hits = append(hits, WallTop)
	}
	return hits
}

// PassedBottom reports whether the ball reached the bottom edge.
func (r *Resolver) PassedBottom(b Ball) bool {
	return b.Y >= r.bounds.Bottom
}

// PaddleAngle returns the outgoing angle for a hit diff units right of the
// paddle center. It runs from -Pi+MaxDeflection at the left edge through
// -Pi/2 at the center to -MaxDeflection at the right edge.
// The interpolated value is clamped as well, so rounding near the edges
// cannot step past the clamp value.
func PaddleAngle(diff, maxDiff float64) float64 {
	lo, hi := -math.Pi+MaxDeflection, -MaxDeflection
	if diff >= maxDiff {
		return hi
	}
	if diff <= -maxDiff {
		return lo
	}
	return core.ClampF(-math.Pi/2+(diff/maxDiff)*(math.Pi/2-MaxDeflection), lo, hi)
}

// Paddle bounces the ball off the paddle. Once a contact has turned the
// ball, further overlapping steps are ignored until the ball comes free.
func (r *Resolver) Paddle(b *Ball, p Paddle) bool {
	if !core.RectOverlap(p.Center(), p.Size(), b.Center(), b.Size()) {
		r.onPaddle = false
		return false
	}
	if r.onPaddle {
		return false
	}
	r.onPaddle = true
	b.Theta = PaddleAngle(b.X-p.X, p.Width/2+b.Radius)
	return true
}

// Blocks finds the first block overlapping the ball, turns the ball off the
// face it came through and returns its index. It returns -1 when nothing
// was hit. At most one block is resolved per call.
func (r *Resolver) Blocks(b *Ball, blocks []Block) (int, Side) {
	for i, k := range blocks {
		if !core.RectOverlap(k.Center(), k.Size(), b.Center(), b.Size()) {
			continue
		}
		side := BlockSide(*b, k)
		b.Theta = reflectFromSide(b.Theta, side)
		return i, side
	}
	return -1, SideNone
}

// BlockSide works out which face of k the ball crossed this step by
// sweeping the ball's corners from their previous to their current
// position. Faces are tried bottom, right, left, top.
func BlockSide(b Ball, k Block) Side {
	prev := b.corners(b.LastX, b.LastY)
	cur := b.corners(b.X, b.Y)
	const tl, tr, bl, br = 0, 1, 2, 3

	left, right := k.X-k.Width/2, k.X+k.Width/2
	top, bottom := k.Y-k.Height/2, k.Y+k.Height/2

	crosses := func(corner int, e0, e1 core.Vec2) bool {
		return core.SegmentIntersect(prev[corner], cur[corner], e0, e1)
	}

	bottomEdge := [2]core.Vec2{core.V(left, bottom), core.V(right, bottom)}
	if crosses(tl, bottomEdge[0], bottomEdge[1]) || crosses(tr, bottomEdge[0], bottomEdge[1]) {
		return SideBottom
	}

	rightEdge := [2]core.Vec2{core.V(right, bottom), core.V(right, top)}
	if crosses(tl, rightEdge[0], rightEdge[1]) || crosses(bl, rightEdge[0], rightEdge[1]) {
		return SideRight
	}

	leftEdge := [2]core.Vec2{core.V(left, bottom), core.V(left, top)}
	if crosses(tr, leftEdge[0], leftEdge[1]) || crosses(br, leftEdge[0], leftEdge[1]) {
		return SideLeft
	}

	topEdge := [2]core.Vec2{core.V(left, top), core.V(right, top)}
	if crosses(bl, topEdge[0], topEdge[1]) || crosses(br, topEdge[0], topEdge[1]) {
		return SideTop
	}

	return SideNone
}

func reflectFromSide(theta float64, s Side) float64 {
	switch s {
	case SideBottom, SideTop:
		return core.NormalizeSigned(core.ReflectVertical(theta))
	case SideRight:
		return core.NormalizeSigned(core.ReflectRight(theta))
	case SideLeft:
		return core.NormalizeSigned(core.ReflectLeft(theta))
	default:
		return theta
	}
}
