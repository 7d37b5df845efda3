// Package navigation tracks route progress and computes the steering aid bearing
package navigation

import (
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/vmath"
)

// NoSegment marks an unknown segment index
const NoSegment = -1

// NearestSegment returns the index i of segment [i, i+1] closest to p.
// NoSegment for routes with fewer than two waypoints
func NearestSegment(route gridmap.Route, p vmath.Vec2) int {
	best := NoSegment
	bestDist := 0.0
	for i := 0; i+1 < len(route); i++ {
		d := vmath.DistanceToSegment(route[i], route[i+1], p)
		if best == NoSegment || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// AidTarget returns the steering target for segment i: the midpoint of waypoints i+1 and i+2,
// or waypoint i+1 when it is the last one
func AidTarget(route gridmap.Route, segment int) (vmath.Vec2, bool) {
	next := segment + 1
	if segment < 0 || next >= len(route) {
		return vmath.Vec2{}, false
	}
	if next+1 < len(route) {
		return vmath.V2Mid(route[next], route[next+1]), true
	}
	return route[next], true
}

// AidBearing returns the signed turn from bearing toward the aid target, in (-π, π].
// The value jumps when the nearest segment changes
func AidBearing(route gridmap.Route, segment int, p vmath.Vec2, bearing float64) (float64, bool) {
	target, ok := AidTarget(route, segment)
	if !ok {
		return 0, false
	}
	return vmath.BearingDifference(bearing, vmath.BearingTo(p, target)), true
}
