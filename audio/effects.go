package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/sonar"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
)

// oscillator generates a wave whose frequency sweeps exponentially from start to end
type oscillator struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding exponentially from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.start
		if o.end != o.start && o.duration > 0 {
			freq = o.start * math.Pow(o.end/o.start, float64(o.position)/float64(o.duration))
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// stage is one piece of a gain envelope
type stage struct {
	samples     int
	from, to    float64
	exponential bool
}

// envelope multiplies a stream by a piecewise gain curve and ends with the last stage
type envelope struct {
	streamer beep.Streamer
	stages   []stage
	index    int
	position int
}

// newEnvelope shapes s with stages
func newEnvelope(s beep.Streamer, stages ...stage) beep.Streamer {
	return &envelope{streamer: s, stages: stages}
}

// linear builds a straight ramp stage
func linear(d time.Duration, from, to float64, rate beep.SampleRate) stage {
	return stage{samples: rate.N(d), from: from, to: to}
}

// exponential builds a geometric ramp stage, from and to must be positive
func exponential(d time.Duration, from, to float64, rate beep.SampleRate) stage {
	return stage{samples: rate.N(d), from: from, to: to, exponential: true}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.index >= len(e.stages) {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for e.index < len(e.stages) && e.position >= e.stages[e.index].samples {
			e.index++
			e.position = 0
		}
		if e.index >= len(e.stages) {
			return i, i > 0
		}

		st := e.stages[e.index]
		frac := float64(e.position) / float64(st.samples)
		var gain float64
		if st.exponential {
			gain = st.from * math.Pow(st.to/st.from, frac)
		} else {
			gain = st.from + (st.to-st.from)*frac
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear factor
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// pingPulse is the outgoing 500 Hz blip with a triangular envelope peaking at 0.5
func pingPulse(rate beep.SampleRate) beep.Streamer {
	half := parameter.PingDuration / 2
	osc := NewOscillator(parameter.PingFrequency, parameter.PingDuration, WaveSine, rate)
	return newEnvelope(osc, linear(half, 0, 0.5, rate), linear(half, 0.5, 0, rate))
}

// CreatePingSound renders a ping and its echoes: the direct pulse plus one delayed,
// gain-normalized, panned copy per pong
func CreatePingSound(cfg *Config, pongs []sonar.Pong) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	attenuations := make([]float64, len(pongs))
	for i, p := range pongs {
		attenuations[i] = p.Attenuation
	}
	gains := EchoGains(attenuations)

	lead := beep.Silence(rate.N(parameter.PingLead))
	parts := make([]beep.Streamer, 0, len(pongs)+1)
	parts = append(parts, beep.Seq(lead, newVolume(pingPulse(rate), parameter.PingGain)))

	for i, p := range pongs {
		delay := parameter.PingLead + time.Duration(p.Delay*float64(time.Second))
		echo := beep.Seq(beep.Silence(rate.N(delay)), newVolume(pingPulse(rate), gains[i]))
		parts = append(parts, &effects.Pan{Streamer: echo, Pan: TriangleWave(p.RelativeBearing)})
	}

	return newVolume(beep.Mix(parts...), cfg.MasterVolume)
}

// CreateCollisionSound generates a falling triangle thud
func CreateCollisionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CollisionDuration

	osc := NewSweep(parameter.CollisionStartFrequency, parameter.CollisionEndFrequency, d, WaveTriangle, rate)
	shaped := newEnvelope(osc, linear(d, parameter.CollisionGain, 0.01, rate))
	return newVolume(shaped, cfg.MasterVolume)
}

// CreateFinishSound generates a root, fifth and octave chord
func CreateFinishSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.FinishDuration
	attack := parameter.FinishAttack

	var notes []beep.Streamer
	for _, ratio := range []float64{1, 1.5, 2} {
		osc := NewOscillator(parameter.FinishBaseFrequency*ratio, d, WaveTriangle, rate)
		notes = append(notes, newEnvelope(osc,
			linear(attack, 0, parameter.FinishGain, rate),
			exponential(d-attack, parameter.FinishGain, 0.001, rate),
		))
	}
	return newVolume(beep.Mix(notes...), cfg.MasterVolume)
}

// fadDrone is the continuous two-tone steering aid, gains are changed under speaker.Lock
type fadDrone struct {
	positive *effects.Gain
	negative *effects.Gain
	mix      beep.Streamer
}

// newFADDrone starts both tones silent
func newFADDrone(rate beep.SampleRate) (*fadDrone, error) {
	pos, err := generators.SineTone(rate, parameter.FADBaseFrequency)
	if err != nil {
		return nil, err
	}
	neg, err := generators.SineTone(rate, parameter.FADBaseFrequency*parameter.FADNegativeRatio)
	if err != nil {
		return nil, err
	}

	d := &fadDrone{
		positive: &effects.Gain{Streamer: pos, Gain: -1},
		negative: &effects.Gain{Streamer: neg, Gain: -1},
	}
	d.mix = beep.Mix(d.positive, d.negative)
	return d, nil
}

// set applies linear gains, effects.Gain scales by 1+Gain
func (d *fadDrone) set(positive, negative float64) {
	d.positive.Gain = positive - 1
	d.negative.Gain = negative - 1
}
