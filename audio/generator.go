package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneGenerator streams a finite sine tone with a linear attack and release
type toneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	volume   float64
	attack   int
	duration int
	pos      int
}

// NewTone creates a tone streamer that ends after duration
func NewTone(sr beep.SampleRate, freq float64, duration, attack time.Duration, volume float64) beep.Streamer {
	n := sr.N(duration)
	a := sr.N(attack)
	if a*2 > n {
		a = n / 2
	}
	return &toneGenerator{
		sr:       sr,
		freq:     freq,
		volume:   volume,
		attack:   a,
		duration: n,
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.sr)
		sample := g.volume * g.envelope() * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// envelope ramps up over attack samples and down over the same span at the end
func (g *toneGenerator) envelope() float64 {
	if g.attack == 0 {
		return 1
	}
	if g.pos < g.attack {
		return float64(g.pos) / float64(g.attack)
	}
	if remaining := g.duration - g.pos; remaining < g.attack {
		return float64(remaining) / float64(g.attack)
	}
	return 1
}

func (g *toneGenerator) Err() error {
	return nil
}
