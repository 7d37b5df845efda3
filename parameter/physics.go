package parameter

// Simulation Clock
const (
	// TickTime is the fixed integrator step in seconds
	TickTime = 0.1
)

// Ship Motion
const (
	// ShipRotationRate is the turn rate at full rotate input (rad/s)
	ShipRotationRate = 2.0

	// ShipAcceleration is the thrust acceleration at full thrust input (cells/s²)
	ShipAcceleration = 30.0

	// ShipDrag is the quadratic drag coefficient: a_drag = -ShipDrag * |v| * v (1/cell)
	// Terminal speed at full thrust is sqrt(ShipAcceleration / ShipDrag) ≈ 3.9 cells/s
	ShipDrag = 2.0

	// ShipRestitution is the fraction of inbound normal velocity returned on collision
	ShipRestitution = 0.5

	// ShipReboundAcceleration pushes the ship out of terrain each colliding tick (cells/s²)
	ShipReboundAcceleration = 10.0
)
