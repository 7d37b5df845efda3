// Package sonar casts a ring of rays through the grid and reports one echo per ray
package sonar

import (
	"math"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/vmath"
)

// Pong is one returned echo
type Pong struct {
	RelativeBearing float64    // Offset from ship bearing, radians in [0, 2π)
	Delay           float64    // Round-trip seconds
	Attenuation     float64    // Round-trip loss in dB, non-negative
	HitPoint        vmath.Vec2 // Reflecting surface, clamped to the map rectangle
}

// Params tunes pulse propagation
type Params struct {
	RayCount           int     `mapstructure:"ray_count"`
	SpeedOfSound       float64 `mapstructure:"speed_of_sound"`       // Cells per second
	AttenuationPerCell float64 `mapstructure:"attenuation_per_cell"` // One-way dB per cell
}

// DefaultParams returns the tuned propagation constants
func DefaultParams() Params {
	return Params{
		RayCount:           parameter.SonarRayCount,
		SpeedOfSound:       parameter.SonarSpeedOfSound,
		AttenuationPerCell: parameter.SonarAttenuationPerCell,
	}
}

// Cast returns exactly p.RayCount pongs for a ship at position facing bearing.
// Rays are evenly spaced relative bearings 2π·i/RayCount; each walks the grid along its
// major axis until it leaves the map or enters terrain, accumulating two-way delay and
// loss for every open step. The walk is bounded by Width+Height steps
func Cast(m *gridmap.GridMap, position vmath.Vec2, bearing float64, p Params) []Pong {
	pongs := make([]Pong, p.RayCount)
	for i := range pongs {
		relative := 2 * math.Pi * float64(i) / float64(p.RayCount)
		pongs[i] = castRay(m, position, bearing+relative, p)
		pongs[i].RelativeBearing = relative
	}
	return pongs
}

func castRay(m *gridmap.GridMap, origin vmath.Vec2, bearing float64, p Params) Pong {
	w := vmath.NewMajorAxisWalker(origin, vmath.Forward(bearing))
	stepLen := w.StepLength()
	maxSteps := m.Width + m.Height

	var pong Pong
	for w.Steps() < maxSteps {
		point := w.Next()
		x, y := w.Cell()
		if !m.InBounds(x, y) {
			pong.HitPoint = m.ClampPoint(point)
			return pong
		}
		if m.Cells[y*m.Width+x] == gridmap.CellTerrain {
			pong.HitPoint = point
			return pong
		}
		pong.Attenuation += 2 * stepLen * p.AttenuationPerCell
		pong.Delay += 2 * stepLen / p.SpeedOfSound
	}
	pong.HitPoint = m.ClampPoint(w.Point())
	return pong
}
