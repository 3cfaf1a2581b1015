package system

import (
	"testing"

	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/vmath"

	"github.com/stretchr/testify/assert"
)

func TestStatsCountsEvents(t *testing.T) {
	ecs := entity.NewECS()
	spawnBullet(ecs, vmath.Vec2{}, vmath.Vec2{X: 1})
	ecs.Tick = 9

	s := NewStatsSystem(ecs)
	s.OnEvent(event.Event{Type: event.BulletSpawned})
	s.OnEvent(event.Event{Type: event.BulletSpawned})
	s.OnEvent(event.Event{Type: event.BulletDespawned, Data: event.BulletDespawnedData{Lifetime: 115}})
	s.OnEvent(event.Event{Type: event.GamePaused})
	s.Update()

	assert.Equal(t, Stats{Ticks: 9, ShotsFired: 2, Despawned: 1, LiveBullets: 1, LastLifetime: 115}, s.Stats())
}

func TestStatsLines(t *testing.T) {
	lines := Stats{Ticks: 3, ShotsFired: 2, LiveBullets: 1}.Lines()
	assert.Equal(t, []string{"Tick: 3", "Shots: 2", "Bullets: 1", "Despawned: 0"}, lines)
}
