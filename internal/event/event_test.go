package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(BulletSpawned, ListenerFunc(func(Event) { got = append(got, "a") }))
	d.Subscribe(BulletSpawned, ListenerFunc(func(Event) { got = append(got, "b") }))
	d.Subscribe(GamePaused, ListenerFunc(func(Event) { got = append(got, "pause") }))

	d.Dispatch(Event{Type: BulletSpawned})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDispatchWithoutListeners(t *testing.T) {
	var nilDispatcher *Dispatcher
	assert.NotPanics(t, func() {
		nilDispatcher.Dispatch(Event{Type: GameResumed})
		NewDispatcher().Dispatch(Event{Type: GameResumed})
	})
}
