// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	SampleRate = beep.SampleRate(44100)

	shotDuration = 60 * time.Millisecond
	shotAttack   = 2 * time.Millisecond
	shotRelease  = 45 * time.Millisecond
	shotFreq     = 880.0
	shotOvertone = 1320.0
)

// envelope — линейная атака и затухание поверх потока.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope ограничивает поток длительностью duration и сглаживает края.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume: громкость 0 даёт тишину, иначе log2 шкала beep.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewShotSound — короткий "пиу": основной тон с квинтой сверху.
func NewShotSound(volume float64) (beep.Streamer, error) {
	fund, err := generators.SineTone(SampleRate, shotFreq)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(SampleRate, shotOvertone)
	if err != nil {
		return nil, err
	}
	mixed := beep.Mix(
		newVolume(NewEnvelope(fund, shotDuration, shotAttack, shotRelease, SampleRate), 0.7),
		newVolume(NewEnvelope(over, shotDuration, shotAttack, shotRelease/2, SampleRate), 0.3),
	)
	return newVolume(beep.Take(SampleRate.N(shotDuration), mixed), volume), nil
}
