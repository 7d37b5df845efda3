package vmath

import (
	"math"
)

// Bearings are measured clockwise from the +Y axis (grid "down"), radians
// Bearing 0 faces (0, 1), bearing π/2 faces (-1, 0)

// WrapAngle normalizes an angle into (-π, π]
func WrapAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// BearingDifference returns the signed turn from bearing a to bearing b in (-π, π]
func BearingDifference(a, b float64) float64 {
	return WrapAngle(b - a)
}

// Forward returns the unit heading vector for a bearing
func Forward(bearing float64) Vec2 {
	return Vec2{-math.Sin(bearing), math.Cos(bearing)}
}

// BearingOf returns the bearing of direction d, inverse of Forward
func BearingOf(d Vec2) float64 {
	return math.Atan2(-d.X, d.Y)
}

// BearingTo returns the bearing from point from toward point to
func BearingTo(from, to Vec2) float64 {
	return BearingOf(V2Sub(to, from))
}
