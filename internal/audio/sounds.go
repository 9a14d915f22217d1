// Package audio plays short tones for game events on the local speaker.
package audio

import (
	"math"
	"reactionarena/internal/events"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

const (
	spawnFreq    = 440.0
	spawnLength  = 40 * time.Millisecond
	hitFreq      = 660.0
	fastHitFreq  = 880.0
	hitLength    = 60 * time.Millisecond
	fastReaction = 300 * time.Millisecond
	volume       = 0.25
)

// tone is a sine at freq for d, or nil if the generator rejects freq.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(rate.N(d), sine)
}

// math.Log2(0) is -Inf, so zero volume becomes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound returns the cue for ev, or nil when the event has none. Fast hits
// finish a fourth higher.
func Sound(rate beep.SampleRate, ev events.Event) beep.Streamer {
	switch ev.Kind {
	case events.KindSpawn:
		s := tone(rate, spawnFreq, spawnLength)
		if s == nil {
			return nil
		}
		return newVolume(s, volume)
	case events.KindHit:
		second := hitFreq
		if ev.Reaction < fastReaction {
			second = fastHitFreq
		}
		first := tone(rate, hitFreq, hitLength)
		last := tone(rate, second, hitLength)
		if first == nil || last == nil {
			return nil
		}
		return newVolume(beep.Seq(first, last), volume)
	}
	return nil
}
