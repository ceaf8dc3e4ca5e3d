package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
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
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 //#nosec G404 -- audio noise
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped oscillator tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound synthesizes the effect for a cue at the given volume (0..1).
// Unknown cues yield nil.
func Sound(c core.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueShot:
		s = note(1200, 60*time.Millisecond, WaveSquare, rate)
	case core.CueEnemyKilled:
		s = note(0, 120*time.Millisecond, WaveNoise, rate)
	case core.CuePlayerKilled:
		s = beep.Seq(
			note(220, 120*time.Millisecond, WaveSaw, rate),
			note(165, 120*time.Millisecond, WaveSaw, rate),
			note(110, 240*time.Millisecond, WaveSaw, rate),
		)
	case core.CueExtraLife:
		s = beep.Seq(
			note(660, 80*time.Millisecond, WaveSine, rate),
			note(880, 80*time.Millisecond, WaveSine, rate),
			note(1320, 120*time.Millisecond, WaveSine, rate),
		)
	case core.CueHit:
		s = beep.Mix(
			newVolume(note(988, 200*time.Millisecond, WaveSine, rate), 0.6),
			newVolume(note(1976, 200*time.Millisecond, WaveSine, rate), 0.4),
		)
	case core.CueBonusAppear:
		tone, err := generators.SineTone(rate, 440)
		if err != nil {
			return nil
		}
		d := 150 * time.Millisecond
		s = newEnvelope(beep.Take(rate.N(d), tone), d, 10*time.Millisecond, 60*time.Millisecond, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
