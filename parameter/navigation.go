package parameter

import "time"

// Input
const (
	// InputHoldTicks keeps a pressed key active for this many ticks
	// Terminals report key presses and auto-repeat, never releases
	InputHoldTicks = 3
)

// Debug View
const (
	// PongShowDuration is how long echo hit points stay on the debug view
	PongShowDuration = 1 * time.Second
)
