// Package core provides fundamental types and utilities for the arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in field coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Size is the width and height of an axis-aligned box.
type Size struct {
	W, H float64
}

// Bounds is the axis-aligned play field rectangle in field coordinates.
// Y grows downward, so Top < Bottom.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// CenteredBounds places a field of the given size in the middle of a canvas.
func CenteredBounds(canvasW, canvasH, fieldW, fieldH float64) Bounds {
	return Bounds{
		Left:   canvasW/2 - fieldW/2,
		Right:  canvasW/2 + fieldW/2,
		Top:    canvasH/2 - fieldH/2,
		Bottom: canvasH/2 + fieldH/2,
	}
}

// Width returns Right - Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Contains reports whether p lies strictly inside the bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X > b.Left && p.X < b.Right && p.Y > b.Top && p.Y < b.Bottom
}

// SegmentIntersect reports whether segment a0-a1 intersects segment b0-b1.
//
// Parallel or degenerate segments (zero denominator) never intersect. The
// range check is written so that NaN parameters fail it.
func SegmentIntersect(a0, a1, b0, b1 Vec2) bool {
	s1x, s1y := a1.X-a0.X, a1.Y-a0.Y
	s2x, s2y := b1.X-b0.X, b1.Y-b0.Y

	denom := -s2x*s1y + s1x*s2y
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return false
	}

	s := (-s1y*(a0.X-b0.X) + s1x*(a0.Y-b0.Y)) / denom
	t := (s2x*(a0.Y-b0.Y) - s2y*(a0.X-b0.X)) / denom

	return s >= 0 && s <= 1 && t >= 0 && t <= 1
}

// RectOverlap reports whether two center-anchored boxes overlap.
// Edges that merely touch do not count.
func RectOverlap(c1 Vec2, s1 Size, c2 Vec2, s2 Size) bool {
	l1, t1 := c1.X-s1.W/2, c1.Y-s1.H/2
	l2, t2 := c2.X-s2.W/2, c2.Y-s2.H/2

	return l1 < l2+s2.W &&
		l1+s1.W > l2 &&
		t1 < t2+s2.H &&
		t1+s1.H > t2
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
