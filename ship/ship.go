// Package ship owns the simulated vessel: motion, sonar and route tracking on one map
package ship

import (
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/navigation"
	"github.com/lixenwraith/deepecho/physics"
	"github.com/lixenwraith/deepecho/sonar"
	"github.com/lixenwraith/deepecho/vmath"
)

// Ship is the only mutable simulation entity
// Not safe for concurrent use, a single loop drives Tick and Ping
type Ship struct {
	Events Events

	m      *gridmap.GridMap
	tuning Tuning
	sonar  sonar.Params

	kinetic physics.Kinetic
	bearing float64

	fadEnabled     bool
	currentRoute   int
	currentSegment int
	finished       bool
}

// New places a ship at the center of the map's start cell, at rest, with FAD enabled
func New(m *gridmap.GridMap, tuning Tuning) *Ship {
	return &Ship{
		m:      m,
		tuning: tuning,
		sonar:  sonar.DefaultParams(),
		kinetic: physics.Kinetic{
			Position: vmath.V2Add(m.Start, vmath.V2(0.5, 0.5)),
		},
		bearing:        vmath.WrapAngle(m.StartBearing),
		fadEnabled:     true,
		currentSegment: navigation.NoSegment,
	}
}

// SetSonar replaces the sonar parameters used by Ping
func (s *Ship) SetSonar(p sonar.Params) {
	s.sonar = p
}

// Tick advances the ship by one fixed step
// thrust and rotate are clamped to [-1, 1]
func (s *Ship) Tick(thrust, rotate float64) {
	thrust = clampUnit(thrust)
	rotate = clampUnit(rotate)
	dt := s.tuning.TickTime

	s.bearing = vmath.WrapAngle(s.bearing + rotate*s.tuning.RotationRate*dt)

	hit := physics.Test(s.m, s.kinetic.Position)
	if hit.Collision {
		physics.Bounce(&s.kinetic, hit.Normal, s.tuning.collisionProfile(), dt)
		s.Events.Collisions.Publish(hit)
	}

	if hit.Cell == gridmap.CellFinish && !s.finished {
		s.finished = true
		s.Events.Finished.Publish(struct{}{})
	}

	accel := vmath.V2Scale(vmath.Forward(s.bearing), thrust*s.tuning.Acceleration)
	physics.Integrate(&s.kinetic, accel, s.tuning.Drag, dt)

	s.updateSegment()
}

// updateSegment re-resolves the nearest segment of the current route
func (s *Ship) updateSegment() {
	route, ok := s.route()
	if !ok {
		return
	}
	seg := navigation.NearestSegment(route, s.kinetic.Position)
	if seg == s.currentSegment {
		return
	}
	s.currentSegment = seg
	s.Events.SegmentChanged.Publish(SegmentRef{Route: s.currentRoute, Segment: seg})
}

// Ping casts the sonar from the current pose, publishes the pongs and returns them
func (s *Ship) Ping() []sonar.Pong {
	pongs := sonar.Cast(s.m, s.kinetic.Position, s.bearing, s.sonar)
	s.Events.Pongs.Publish(pongs)
	return pongs
}

// ToggleFAD flips the fixed aid direction and returns the new state
func (s *Ship) ToggleFAD() bool {
	s.fadEnabled = !s.fadEnabled
	return s.fadEnabled
}

// CycleRoute selects the next route and resets the segment to unknown
// With no routes it is a no-op returning the current index
func (s *Ship) CycleRoute() int {
	n := len(s.m.Routes)
	if n == 0 {
		return s.currentRoute
	}
	s.currentRoute = (s.currentRoute + 1) % n
	s.currentSegment = navigation.NoSegment
	s.Events.RouteChanged.Publish(s.currentRoute)
	return s.currentRoute
}

// FADBearing returns the signed turn toward the aid target of the current segment
// Suppressed while FAD is off or the ship sits in interference, false until a segment is known
func (s *Ship) FADBearing() (float64, bool) {
	if !s.fadEnabled || s.Cell() == gridmap.CellInterference {
		return 0, false
	}
	route, ok := s.route()
	if !ok {
		return 0, false
	}
	return navigation.AidBearing(route, s.currentSegment, s.kinetic.Position, s.bearing)
}

func (s *Ship) route() (gridmap.Route, bool) {
	if s.currentRoute >= len(s.m.Routes) {
		return nil, false
	}
	return s.m.Routes[s.currentRoute], true
}

// Position returns the ship position in cells
func (s *Ship) Position() vmath.Vec2 { return s.kinetic.Position }

// Velocity returns the ship velocity in cells per second
func (s *Ship) Velocity() vmath.Vec2 { return s.kinetic.Velocity }

// Bearing returns the heading in (-π, π]
func (s *Ship) Bearing() float64 { return s.bearing }

// Finished reports whether the ship has reached a finish cell
func (s *Ship) Finished() bool { return s.finished }

// FADEnabled reports the aid toggle state
func (s *Ship) FADEnabled() bool { return s.fadEnabled }

// CurrentRoute returns the selected route index
func (s *Ship) CurrentRoute() int { return s.currentRoute }

// CurrentSegment returns the nearest segment index, navigation.NoSegment when unknown
func (s *Ship) CurrentSegment() int { return s.currentSegment }

// Map returns the map the ship moves on
func (s *Ship) Map() *gridmap.GridMap { return s.m }

// Cell returns the cell type under the ship
func (s *Ship) Cell() gridmap.CellType {
	x, y := vmath.V2Floor(s.kinetic.Position)
	return s.m.CellAt(x, y)
}

// SetVelocity overrides the ship velocity
func (s *Ship) SetVelocity(v vmath.Vec2) { s.kinetic.Velocity = v }

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
