package audio

import (
	"testing"
	"time"

	"go-topdown-shooter/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ends")
	return nil
}

func TestEnvelopeLimitsDuration(t *testing.T) {
	sine, err := generators.SineTone(SampleRate, 440)
	require.NoError(t, err)

	env := NewEnvelope(sine, 10*time.Millisecond, time.Millisecond, 2*time.Millisecond, SampleRate)
	samples := drain(t, env)
	assert.Len(t, samples, SampleRate.N(10*time.Millisecond))
	// атака начинается с тишины
	assert.Equal(t, 0.0, samples[0][0])
	assert.NoError(t, env.Err())
}

func TestShotSoundInRange(t *testing.T) {
	shot, err := NewShotSound(0.5)
	require.NoError(t, err)
	samples := drain(t, shot)

	assert.Len(t, samples, SampleRate.N(shotDuration))
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestShotSoundSilent(t *testing.T) {
	shot, err := NewShotSound(0)
	require.NoError(t, err)
	for _, s := range drain(t, shot) {
		require.Equal(t, [2]float64{}, s)
	}
}

func TestShotPlayerPlaysOnSpawnOnly(t *testing.T) {
	var played []beep.Streamer
	p, err := NewShotPlayer(0.5, func(s beep.Streamer) { played = append(played, s) }, nil)
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(shotDuration), p.Len())

	p.OnEvent(event.Event{Type: event.BulletSpawned})
	p.OnEvent(event.Event{Type: event.BulletDespawned})
	p.OnEvent(event.Event{Type: event.BulletSpawned})
	require.Len(t, played, 2)
	assert.Len(t, drain(t, played[0]), p.Len())

	assert.NotPanics(t, p.Close)
}
