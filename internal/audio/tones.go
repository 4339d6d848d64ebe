package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// note is one segment of a cue. A zero frequency is noise.
type note struct {
	freq float64
	dur  time.Duration
}

// recipes are the procedural stand-ins for the cue files.
var recipes = map[string][]note{
	"pong":      {{440, 30 * time.Millisecond}},
	"beep":      {{880, 50 * time.Millisecond}},
	"bang":      {{330, 40 * time.Millisecond}},
	"looselife": {{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {330, 150 * time.Millisecond}},
	"gameover": {
		{523, 150 * time.Millisecond}, {392, 150 * time.Millisecond},
		{330, 150 * time.Millisecond}, {262, 300 * time.Millisecond},
	},
	"explosion": {{0, 250 * time.Millisecond}},
}

// fallback is used for cue names without a recipe.
var fallback = []note{{600, 40 * time.Millisecond}}

// synth renders a cue's notes back to back at the given volume.
func synth(name string, gain float64) beep.Streamer {
	notes, ok := recipes[name]
	if !ok {
		notes = fallback
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		if n.freq == 0 {
			parts[i] = noise(n.dur, gain)
		} else {
			parts[i] = squareWave(n.freq, n.dur, gain)
		}
	}
	return beep.Seq(parts...)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration, gain float64) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := gain
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// noise generates a decaying burst of white noise. The generator is seeded
// so a cue sounds the same every time.
func noise(duration time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(duration)
	left := total
	var state uint32 = 0x12345678

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if left <= 0 {
				return i, i > 0
			}
			state = state*1664525 + 1013904223
			r := float64(state)/float64(math.MaxUint32)*2 - 1
			val := r * gain * float64(left) / float64(total)
			samples[i][0] = val
			samples[i][1] = val
			left--
		}
		return len(samples), true
	})
}
