package vmath

// ClosestOnSegment projects p onto segment ab, clamping the projection to the segment
// Degenerate segments (a == b) return a
func ClosestOnSegment(a, b, p Vec2) Vec2 {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return a
	}
	t := V2Dot(V2Sub(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return V2AddScaled(a, ab, t)
}

// DistanceToSegment returns the distance from p to the closest point of segment ab
func DistanceToSegment(a, b, p Vec2) float64 {
	return V2Dist(p, ClosestOnSegment(a, b, p))
}
