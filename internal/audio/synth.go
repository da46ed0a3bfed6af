// Package audio turns game sound cues into synthesized tones.
//
// Cues are built from short oscillator notes shaped by an attack/release
// envelope. They can be played through the system speaker or written to WAV.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// note is a fixed-length oscillator.
type note struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// Note creates a streamer of one tone. A non-zero sweep glides the frequency.
func Note(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &note{
		freq:   freq,
		sweep:  sweep,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewPCG(uint64(freq*1000), uint64(d))),
	}
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.length {
			return i, i > 0
		}

		var v float64
		switch n.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * n.phase)
		case WaveSquare:
			v = 1
			if n.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (n.phase - 0.5)
		case WaveNoise:
			v = n.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		f := n.freq + n.sweep*float64(n.position)/float64(n.rate)
		n.phase += math.Max(f, 0) / float64(n.rate)
		n.phase -= math.Floor(n.phase)
		n.position++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

// envelope fades a streamer in over attack samples and out over release samples.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape applies a linear attack/release envelope over a sound of length d.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales a streamer linearly; zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped note with a short attack and a release over the last third.
func tone(freq, sweep float64, d time.Duration, wave Wave) beep.Streamer {
	return Shape(Note(freq, sweep, d, wave, SampleRate), d, 5*time.Millisecond, d/3, SampleRate)
}

// Cue returns a fresh streamer for c, or nil for CueNone and unknown cues.
func Cue(c invaders.Cue) beep.Streamer {
	switch c {
	case invaders.CueFire:
		return gain(tone(1800, -9000, 120*time.Millisecond, WaveNoise), 0.25)
	case invaders.CueKill:
		return gain(beep.Mix(
			tone(90, -120, 300*time.Millisecond, WaveSquare),
			tone(0, 0, 250*time.Millisecond, WaveNoise),
		), 0.35)
	case invaders.CueBomb:
		return gain(tone(1320, -2200, 200*time.Millisecond, WaveSine), 0.3)
	case invaders.CueShipHit:
		return gain(tone(220, -300, 180*time.Millisecond, WaveSquare), 0.35)
	case invaders.CueStart:
		return gain(beep.Seq(
			tone(523.25, 0, 90*time.Millisecond, WaveSquare),
			tone(659.25, 0, 90*time.Millisecond, WaveSquare),
			tone(783.99, 0, 160*time.Millisecond, WaveSquare),
		), 0.25)
	case invaders.CueEnd:
		return gain(beep.Seq(
			tone(392, 0, 160*time.Millisecond, WaveSaw),
			tone(311.13, 0, 160*time.Millisecond, WaveSaw),
			tone(261.63, -60, 360*time.Millisecond, WaveSaw),
		), 0.25)
	case invaders.CueClear:
		claps := make([]beep.Streamer, 0, 12)
		for i := range 6 {
			claps = append(claps,
				tone(0, 0, 40*time.Millisecond, WaveNoise),
				beep.Silence(SampleRate.N(time.Duration(50+10*(i%3))*time.Millisecond)),
			)
		}
		return gain(beep.Seq(claps...), 0.3)
	default:
		return nil
	}
}

// Cues lists every cue that has a sound.
func Cues() []invaders.Cue {
	return []invaders.Cue{
		invaders.CueFire,
		invaders.CueKill,
		invaders.CueBomb,
		invaders.CueShipHit,
		invaders.CueStart,
		invaders.CueEnd,
		invaders.CueClear,
	}
}
