package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep/v2"
)

// clackGenerator produces a short filtered noise burst with a resonant ping,
// roughly what a die sounds like hitting wood.
type clackGenerator struct {
	sr    beep.SampleRate
	amp   float64
	freq  float64
	pos   int
	prev  float64
	noise *rand.Rand
}

func newClackGenerator(sr beep.SampleRate, amp, freq float64) *clackGenerator {
	return &clackGenerator{
		sr:    sr,
		amp:   amp,
		freq:  freq,
		noise: rand.New(rand.NewPCG(uint64(freq), uint64(amp*1e6))),
	}
}

func (g *clackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		decay := math.Exp(-t * 180)

		// One-pole low-pass over white noise plus the body resonance.
		raw := g.noise.Float64()*2 - 1
		g.prev += 0.35 * (raw - g.prev)
		ping := math.Sin(2 * math.Pi * g.freq * t)

		v := g.amp * decay * (0.6*g.prev + 0.4*ping)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *clackGenerator) Err() error {
	return nil
}
