// Package input maps terminal key events to ship intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Continuous intents, latched for HoldTicks after each press or auto-repeat
	IntentThrustForward // w, Up
	IntentThrustReverse // s, Down
	IntentRotateLeft    // a, Left
	IntentRotateRight   // d, Right

	// Discrete intents, acted on once per press
	IntentPing       // Space
	IntentToggleFAD  // f
	IntentCycleRoute // c
	IntentQuit       // q, Esc, Ctrl+C

	intentCount
)

// Continuous reports whether the intent drives an axis rather than a one-shot command
func (t IntentType) Continuous() bool {
	return t >= IntentThrustForward && t <= IntentRotateRight
}

// String returns the canonical action name
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "none"
}
