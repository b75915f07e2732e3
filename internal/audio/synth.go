package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator returns a streamer that plays freq for d and then ends.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// defaultNoiseSeed is used when a noise source is given a zero seed,
// which xorshift cannot leave.
const defaultNoiseSeed = 0x2545f491

// NewNoise returns a white noise streamer of length d. Equal seeds give equal samples.
func NewNoise(d time.Duration, rate beep.SampleRate, seed uint32) beep.Streamer {
	if seed == 0 {
		seed = defaultNoiseSeed
	}
	return &oscillator{length: rate.N(d), wave: WaveNoise, rate: rate, seed: seed}
}

// NewSweep is like NewOscillator but glides linearly from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	sweep := 0.0
	if n > 0 {
		sweep = (to - from) / float64(n)
	}
	return &oscillator{
		freq:   from,
		sweep:  sweep,
		length: n,
		wave:   wave,
		rate:   rate,
		seed:   defaultNoiseSeed,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			v = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = v
		samples[i][1] = v

		freq := o.freq + o.sweep*float64(o.position)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with a linear attack and release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies an attack/release envelope to s over d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	n, ok = e.s.Stream(samples)
	for i := range n {
		if e.position >= e.total {
			return i, true
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
