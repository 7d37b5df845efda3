package input

// actionRegistry maps canonical action names to intents
// Used by the binding loader to resolve config action strings
var actionRegistry = map[string]IntentType{
	"none":         IntentNone, // Unbind sentinel
	"thrust":       IntentThrustForward,
	"reverse":      IntentThrustReverse,
	"rotate_left":  IntentRotateLeft,
	"rotate_right": IntentRotateRight,
	"ping":         IntentPing,
	"toggle_fad":   IntentToggleFAD,
	"cycle_route":  IntentCycleRoute,
	"quit":         IntentQuit,
}

var intentNames = func() map[IntentType]string {
	m := make(map[IntentType]string, len(actionRegistry))
	for name, it := range actionRegistry {
		m[it] = name
	}
	return m
}()
