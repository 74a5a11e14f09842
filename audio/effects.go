package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency slides linearly
// from freq to freqEnd over its duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freqStart to freqEnd
func NewSweep(freqStart, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freqStart,
		freqEnd:  freqEnd,
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	total        int
}

// NewEnvelope shapes s, which is cut off after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		releaseStart: max(total-rel, 0),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.total > e.releaseStart {
			gain = math.Min(gain, float64(e.total-e.position)/float64(e.total-e.releaseStart))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

const (
	shotDuration   = 80 * time.Millisecond
	chimeDuration  = 600 * time.Millisecond
	whooshDuration = 250 * time.Millisecond
	coinNote1      = 90 * time.Millisecond
	coinNote2      = 260 * time.Millisecond
)

// CreateShotSound generates a short descending square zap
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(1400, 350, shotDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, shotDuration, 2*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, cfg.Volume(SoundShot))
}

// CreateChimeSound generates a bell-like two-partial tone for the round announcement
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E5) and octave partial
	fund, err := generators.SineTone(rate, 659.25)
	if err != nil {
		return nil
	}
	over, err := generators.SineTone(rate, 1318.5)
	if err != nil {
		return nil
	}

	mixed := beep.Mix(
		newVolume(NewEnvelope(fund, chimeDuration, 5*time.Millisecond, 550*time.Millisecond, rate), 0.7),
		newVolume(NewEnvelope(over, chimeDuration, 5*time.Millisecond, 300*time.Millisecond, rate), 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundChime))
}

// CreateWhooshSound generates a noise swell for an enemy entering the field
func CreateWhooshSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, whooshDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, whooshDuration, 150*time.Millisecond, 100*time.Millisecond, rate)
	return newVolume(shaped, cfg.Volume(SoundWhoosh))
}

// CreateCoinSound generates a rising two-note chime for leaving the start menu
func CreateCoinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewEnvelope(NewOscillator(987.77, coinNote1, WaveSquare, rate), coinNote1, 2*time.Millisecond, 20*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, coinNote2, WaveSquare, rate), coinNote2, 2*time.Millisecond, 200*time.Millisecond, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(SoundCoin))
}

// GetSoundEffect returns a fresh streamer for the given type, nil for unknown types
func GetSoundEffect(st SoundType, cfg *Config) beep.Streamer {
	switch st {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	default:
		return nil
	}
}
