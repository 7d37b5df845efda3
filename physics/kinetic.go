package physics

import (
	"math"

	"github.com/lixenwraith/deepecho/vmath"
)

// Kinetic is the continuous motion state of a body in grid coordinates
type Kinetic struct {
	Position vmath.Vec2 // Cells
	Velocity vmath.Vec2 // Cells per second
}

// CollisionProfile defines the terrain bounce response
type CollisionProfile struct {
	ReboundAcceleration float64 // Constant push along the normal while in contact (cells/s²)
	Restitution         float64 // Fraction of inbound normal speed returned, 0 = inelastic
}

// Bounce applies the contact impulse for a surface with unit normal n.
// Only inbound velocity is reflected; a body already moving out is just nudged by the rebound term
func Bounce(k *Kinetic, n vmath.Vec2, profile CollisionProfile, dt float64) {
	inbound := math.Max(0, -vmath.V2Dot(k.Velocity, n))
	impulse := profile.ReboundAcceleration*dt + (1+profile.Restitution)*inbound
	k.Velocity = vmath.V2AddScaled(k.Velocity, n, impulse)
}

// QuadraticDrag returns the drag deceleration -c·|v|·v
func QuadraticDrag(v vmath.Vec2, c float64) vmath.Vec2 {
	if c == 0 {
		return vmath.Vec2{}
	}
	return vmath.V2Scale(v, -c*vmath.V2Mag(v))
}

// Integrate advances k by dt with a symmetric half step:
// p += v·dt/2; v += (thrust + drag(v))·dt; p += v·dt/2
// With zero acceleration the position advances exactly v·dt
func Integrate(k *Kinetic, thrust vmath.Vec2, drag float64, dt float64) {
	k.Position = vmath.V2AddScaled(k.Position, k.Velocity, dt/2)
	accel := vmath.V2Add(thrust, QuadraticDrag(k.Velocity, drag))
	k.Velocity = vmath.V2AddScaled(k.Velocity, accel, dt)
	k.Position = vmath.V2AddScaled(k.Position, k.Velocity, dt/2)
}
