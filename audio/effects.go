package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and exponential release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64
}

// NewEnvelope shapes s with an attack ramp and an exponential tail of the given time constant
func NewEnvelope(s beep.Streamer, attack, tail time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    1 / float64(max(rate.N(tail), 1)),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(e.position) * e.decay)
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume in [0, 1]
// math.Log2(0) is -Inf, so zero volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BuzzGenerator generates a low-pitch buzz with harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms
		env := math.Min(t/0.02, 1.0)
		sample *= env * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// Sound constructors

func errorSound(rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(150*time.Millisecond), NewBuzzGenerator(rate, 120))
}

func bellSound(rate beep.SampleRate) beep.Streamer {
	tone := beep.Mix(
		NewOscillator(880, 400*time.Millisecond, WaveSine, rate),
		newVolume(NewOscillator(1760, 400*time.Millisecond, WaveSine, rate), 0.3),
	)
	return newVolume(NewEnvelope(tone, 5*time.Millisecond, 120*time.Millisecond, rate), 0.25)
}

func clickSound(rate beep.SampleRate) beep.Streamer {
	burst := NewOscillator(0, 12*time.Millisecond, WaveNoise, rate)
	return newVolume(NewEnvelope(burst, time.Millisecond, 3*time.Millisecond, rate), 0.15)
}
