package vmath

import (
	"math"
)

// MajorAxisWalker is a zero-allocation iterator for major-axis DDA line walks.
// The axis with the larger directional cosine advances exactly one cell per step,
// the minor coordinate advances by the slope, so every step covers the same distance.
type MajorAxisWalker struct {
	point   Vec2    // Current continuous position
	delta   Vec2    // Per-step displacement, one component is ±1
	stepLen float64 // Euclidean length of delta
	steps   int
}

// NewMajorAxisWalker creates a walker starting at origin heading along dir.
// dir need not be normalized; a zero direction walks along +X
func NewMajorAxisWalker(origin, dir Vec2) MajorAxisWalker {
	w := MajorAxisWalker{point: origin}

	ax, ay := math.Abs(dir.X), math.Abs(dir.Y)
	switch {
	case ax == 0 && ay == 0:
		w.delta = Vec2{1, 0}
	case ax >= ay:
		// Major X: one cell in X, slope in Y
		w.delta = Vec2{math.Copysign(1, dir.X), dir.Y / ax}
	default:
		// Major Y: one cell in Y, inverse slope in X
		w.delta = Vec2{dir.X / ay, math.Copysign(1, dir.Y)}
	}
	w.stepLen = V2Mag(w.delta)
	return w
}

// Next advances one major step and returns the new position
func (w *MajorAxisWalker) Next() Vec2 {
	w.point = V2Add(w.point, w.delta)
	w.steps++
	return w.point
}

// Point returns the current continuous position
func (w *MajorAxisWalker) Point() Vec2 {
	return w.point
}

// Cell returns the grid cell containing the current position
func (w *MajorAxisWalker) Cell() (int, int) {
	return V2Floor(w.point)
}

// StepLength returns the distance covered by each step, sqrt(1 + slope²)
func (w *MajorAxisWalker) StepLength() float64 {
	return w.stepLen
}

// Steps returns the number of steps taken so far
func (w *MajorAxisWalker) Steps() int {
	return w.steps
}
