package core

import (
	"math"
	"testing"
)

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 Vec2
		expected       bool
	}{
		{"crossing diagonals", V(0, 0), V(10, 10), V(0, 10), V(10, 0), true},
		{"disjoint", V(0, 0), V(1, 1), V(5, 0), V(5, 1), false},
		{"endpoint touches", V(0, 0), V(5, 0), V(5, -1), V(5, 1), true},
		{"parallel", V(0, 0), V(10, 0), V(0, 1), V(10, 1), false},
		{"collinear overlapping", V(0, 0), V(10, 0), V(5, 0), V(15, 0), false},
		{"degenerate point", V(3, 3), V(3, 3), V(0, 0), V(6, 6), false},
		{"would cross if extended", V(0, 0), V(1, 1), V(0, 10), V(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersect(tt.a0, tt.a1, tt.b0, tt.b1); got != tt.expected {
				t.Errorf("SegmentIntersect = %v, expected %v", got, tt.expected)
			}
			// Argument order does not matter.
			if got := SegmentIntersect(tt.b0, tt.b1, tt.a0, tt.a1); got != tt.expected {
				t.Errorf("SegmentIntersect (swapped) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSegmentIntersectNaN(t *testing.T) {
	nan := math.NaN()
	if SegmentIntersect(V(nan, 0), V(1, 1), V(0, 1), V(1, 0)) {
		t.Error("NaN input should not intersect")
	}
}

func TestRectOverlap(t *testing.T) {
	box := Size{W: 10, H: 10}
	tests := []struct {
		name     string
		c1, c2   Vec2
		expected bool
	}{
		{"overlapping", V(0, 0), V(5, 5), true},
		{"same center", V(0, 0), V(0, 0), true},
		{"touching horizontally", V(0, 0), V(10, 0), false},
		{"touching vertically", V(0, 0), V(0, 10), false},
		{"separate", V(0, 0), V(30, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectOverlap(tt.c1, box, tt.c2, box); got != tt.expected {
				t.Errorf("RectOverlap = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCenteredBounds(t *testing.T) {
	b := CenteredBounds(450, 480, 350, 400)
	if b.Left != 50 || b.Right != 400 || b.Top != 40 || b.Bottom != 440 {
		t.Errorf("CenteredBounds = %+v", b)
	}
	if b.Width() != 350 || b.Height() != 400 {
		t.Errorf("size = %vx%v, expected 350x400", b.Width(), b.Height())
	}
	if c := b.Center(); c != V(225, 240) {
		t.Errorf("Center = %+v", c)
	}
	if !b.Contains(V(100, 100)) || b.Contains(V(50, 100)) {
		t.Error("Contains should be strict")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}

	if got := ClampF(7.5, 0, 5); got != 5 {
		t.Errorf("ClampF(7.5, 0, 5) = %v, expected 5", got)
	}
}

func TestNormalizeSigned(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		got := NormalizeSigned(tt.in)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("NormalizeSigned(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("NormalizeSigned(%v) = %v out of range", tt.in, got)
		}
	}
}

func TestNormalizeUnsigned(t *testing.T) {
	for _, in := range []float64{-0.1, 0, 2 * math.Pi, 7, -20} {
		got := NormalizeUnsigned(in)
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeUnsigned(%v) = %v out of range", in, got)
		}
		if d := math.Remainder(got-in, 2*math.Pi); math.Abs(d) > 1e-9 {
			t.Errorf("NormalizeUnsigned(%v) = %v changed direction", in, got)
		}
	}
}

func TestWallReflections(t *testing.T) {
	up := -math.Pi / 3
	if got := ReflectVertical(up); got != math.Pi/3 {
		t.Errorf("ReflectVertical = %v", got)
	}

	// Heading up-left into the left wall comes back up-right.
	upLeft := -2 * math.Pi / 3
	got := NormalizeSigned(ReflectLeft(upLeft))
	if math.Cos(got) <= 0 || math.Sin(got) >= 0 {
		t.Errorf("ReflectLeft(%v) = %v, expected up-right", upLeft, got)
	}

	// Heading up-right into the right wall comes back up-left.
	got = NormalizeSigned(ReflectRight(up))
	if math.Cos(got) >= 0 || math.Sin(got) >= 0 {
		t.Errorf("ReflectRight(%v) = %v, expected up-left", up, got)
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		fa, fb := a.Float64(), b.Float64()
		if fa != fb {
			t.Fatalf("step %d: %v != %v", i, fa, fb)
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("step %d: %v out of [0, 1)", i, fa)
		}
	}
}

func TestUniformAndFixedSource(t *testing.T) {
	src := &FixedSource{Values: []float64{0, 0.5, 0.999}}
	lo, hi := -math.Pi/6, -5*math.Pi/6

	if got := Uniform(src, lo, hi); got != lo {
		t.Errorf("Uniform with 0 = %v, expected %v", got, lo)
	}
	if got := Uniform(src, lo, hi); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("Uniform with 0.5 = %v, expected -Pi/2", got)
	}
	got := Uniform(src, lo, hi)
	if got > lo || got < hi {
		t.Errorf("Uniform with 0.999 = %v outside [%v, %v]", got, hi, lo)
	}

	// Cycles back to the first value.
	if src.Float64() != 0 {
		t.Error("FixedSource should cycle")
	}

	empty := &FixedSource{}
	if empty.Float64() != 0.5 {
		t.Error("empty FixedSource should return 0.5")
	}
}
