package core

import "math"

// Angles are in radians measured from the positive x axis. Field Y grows
// downward, so -Pi/2 points straight up the screen.

// ReflectVertical mirrors a direction off a horizontal surface (top or bottom).
func ReflectVertical(theta float64) float64 {
	return -theta
}

// ReflectLeft mirrors a direction off a surface facing right (the left wall).
func ReflectLeft(theta float64) float64 {
	return -math.Pi - theta
}

// ReflectRight mirrors a direction off a surface facing left (the right wall).
func ReflectRight(theta float64) float64 {
	return math.Pi - theta
}

// NormalizeSigned wraps theta into (-Pi, Pi].
func NormalizeSigned(theta float64) float64 {
	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}
	r := math.Remainder(theta, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// NormalizeUnsigned wraps theta into [0, 2*Pi).
func NormalizeUnsigned(theta float64) float64 {
	if theta >= 0 && theta < 2*math.Pi {
		return theta
	}
	r := math.Mod(theta, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * math.Pi / 180
}
