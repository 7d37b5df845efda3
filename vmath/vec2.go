package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in grid coordinates (one unit = one cell)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2AddScaled returns a + v*s, the integrator's workhorse
func V2AddScaled(a, v Vec2, s float64) Vec2 {
	return Vec2{a.X + v.X*s, a.Y + v.Y*s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Mid returns the midpoint of a and b
func V2Mid(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// V2Floor returns the integer cell containing v
func V2Floor(v Vec2) (x, y int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// V2Clamp limits each component to [min, max] of the respective axis
func V2Clamp(v, min, max Vec2) Vec2 {
	return Vec2{
		X: math.Max(min.X, math.Min(max.X, v.X)),
		Y: math.Max(min.Y, math.Min(max.Y, v.Y)),
	}
}

// V2Near reports whether a and b are within tol of each other
func V2Near(a, b Vec2, tol float64) bool {
	return V2Dist(a, b) < tol
}
