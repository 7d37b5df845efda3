package audio

import (
	"math"

	"github.com/lixenwraith/deepecho/parameter"
)

// DBToGain converts decibels to a linear amplitude factor
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// TriangleWave is a 2π-periodic triangle through (0, 0), (π/2, 1), (π, 0), (3π/2, -1)
// Used to pan an echo by its relative bearing: ahead and astern center, beam full side
func TriangleWave(x float64) float64 {
	d := x/(2*math.Pi) + 0.25
	d -= math.Floor(d)
	return 1 - 4*math.Abs(d-0.5)
}

// FADGains maps an aid bearing in (-π, π] to the gains of the two drone tones.
// The positive tone rises for turns to positive bearings and peaks at 2π/3, the negative
// tone mirrors it. Both fall silent when no bearing is available
func FADGains(bearing float64, ok bool) (positive, negative float64) {
	if !ok {
		return 0, 0
	}
	d := bearing / math.Pi

	var p, n float64
	if d < 0 {
		p = math.Max(-1-1.5*d, 0)
		n = math.Min(-1.5*d, 2+1.5*d)
	} else {
		p = math.Min(1.5*d, 2-1.5*d)
		n = math.Max(-1+1.5*d, 0)
	}

	positive = parameter.FADBaseGain * math.Pow(p, parameter.FADExponent)
	negative = parameter.FADBaseGain * math.Pow(n, parameter.FADExponent)
	return positive, negative
}

// EchoGains returns the per-pong gains DBToGain(-attenuation) normalized to sum to one
func EchoGains(attenuations []float64) []float64 {
	gains := make([]float64, len(attenuations))
	total := 0.0
	for i, a := range attenuations {
		gains[i] = DBToGain(-a)
		total += gains[i]
	}
	if total == 0 {
		return gains
	}
	for i := range gains {
		gains[i] /= total
	}
	return gains
}
