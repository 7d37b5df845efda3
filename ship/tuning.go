package ship

import (
	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/physics"
)

// Tuning holds the ship motion constants, loadable from config
type Tuning struct {
	TickTime            float64 `mapstructure:"tick_time"`            // Integrator step (s)
	RotationRate        float64 `mapstructure:"rotation_rate"`        // rad/s at full rotate
	Acceleration        float64 `mapstructure:"acceleration"`         // cells/s² at full thrust
	Drag                float64 `mapstructure:"drag"`                 // Quadratic coefficient, 0 disables
	Restitution         float64 `mapstructure:"restitution"`          // Bounce elasticity
	ReboundAcceleration float64 `mapstructure:"rebound_acceleration"` // Push out of terrain (cells/s²)
}

// DefaultTuning returns the tuning from the parameter package
func DefaultTuning() Tuning {
	return Tuning{
		TickTime:            parameter.TickTime,
		RotationRate:        parameter.ShipRotationRate,
		Acceleration:        parameter.ShipAcceleration,
		Drag:                parameter.ShipDrag,
		Restitution:         parameter.ShipRestitution,
		ReboundAcceleration: parameter.ShipReboundAcceleration,
	}
}

func (t Tuning) collisionProfile() physics.CollisionProfile {
	return physics.CollisionProfile{
		ReboundAcceleration: t.ReboundAcceleration,
		Restitution:         t.Restitution,
	}
}
