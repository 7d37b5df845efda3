package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Ping Sound
const (
	PingFrequency = 500.0
	PingDuration  = 100 * time.Millisecond
	PingGain      = 0.1

	// PingLead offsets the outgoing pulse so the first echo never precedes it
	PingLead = 10 * time.Millisecond
)

// Collision Sound
const (
	CollisionStartFrequency = 200.0
	CollisionEndFrequency   = 100.0
	CollisionDuration       = 500 * time.Millisecond
	CollisionGain           = 0.1
)

// Finish Sound
const (
	FinishBaseFrequency = 440.0
	FinishDuration      = 1 * time.Second
	FinishAttack        = 100 * time.Millisecond
	FinishGain          = 0.05
)

// FAD Drone
const (
	FADBaseGain      = 0.05
	FADBaseFrequency = 150.0
	FADExponent      = 1.5

	// FADNegativeRatio is the interval of the port-side tone above the starboard tone
	FADNegativeRatio = 4.0 / 3.0
)
