package core

import "math"

// Body is a read-only copy of a drawable box in field coordinates.
type Body struct {
	X, Y  float64 // Center
	W, H  float64
	Color Color
}

// FieldSnapshot is what a renderer is allowed to see of a running simulation.
// It holds copies only; mutating it never affects the simulation.
type FieldSnapshot struct {
	Bounds Bounds
	Paddle Body
	Ball   Body
	Theta  float64
	Blocks []Body
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s FieldSnapshot) Hash() uint64 {
	h := uint64(len(s.Blocks))
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}

	mix(s.Paddle.X)
	mix(s.Paddle.Y)
	mix(s.Ball.X)
	mix(s.Ball.Y)
	mix(s.Theta)
	for _, b := range s.Blocks {
		mix(b.X)
		mix(b.Y)
	}
	return h
}
