// Package sound plays short synthesized blips as feedback for view changes.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/triangles/internal/config"
)

// Player owns the speaker. A nil *Player is silent.
type Player struct {
	rate beep.SampleRate
}

// New initializes the speaker at the given sample rate.
func New(rate beep.SampleRate) (*Player, error) {
	if err := speaker.Init(rate, rate.N(config.AudioBuffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{rate: rate}, nil
}

// Play queues a blip at freq Hz.
func (p *Player) Play(freq float64) {
	if p == nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: Tone(p.rate, freq, config.BlipDuration),
		Base:     2,
		Volume:   config.BlipVolume,
	})
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
}

// Tone returns a sine at freq Hz lasting d, faded linearly to silence so
// the blip does not click when it ends.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	step := 2 * math.Pi * freq / float64(rate)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env
			samples[n][0] = v
			samples[n][1] = v
			n++
			pos++
		}
		return n, true
	})
}
