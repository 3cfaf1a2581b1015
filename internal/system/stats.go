// internal/system/stats.go
package system

import (
	"fmt"

	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
)

// Stats — счётчики для HUD и итогового отчёта.
type Stats struct {
	Ticks       uint64
	ShotsFired  int
	Despawned   int
	LiveBullets int
	// LastLifetime — сколько тиков прожил последний удалённый снаряд.
	LastLifetime uint64
}

// StatsSystem считает выстрелы и удалённые снаряды по событиям.
type StatsSystem struct {
	ecs   *entity.ECS
	stats Stats
}

func NewStatsSystem(ecs *entity.ECS) *StatsSystem {
	return &StatsSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BulletSpawned:
		s.stats.ShotsFired++
	case event.BulletDespawned:
		s.stats.Despawned++
		if data, ok := e.Data.(event.BulletDespawnedData); ok {
			s.stats.LastLifetime = data.Lifetime
		}
	}
}

// Update вызывается в конце тика.
func (s *StatsSystem) Update() {
	s.stats.Ticks = s.ecs.Tick
	s.stats.LiveBullets = len(s.ecs.Bullets)
}

func (s *StatsSystem) Stats() Stats {
	return s.stats
}

// Lines — счётчики построчно для HUD и отчёта replay.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Tick: %d", s.Ticks),
		fmt.Sprintf("Shots: %d", s.ShotsFired),
		fmt.Sprintf("Bullets: %d", s.LiveBullets),
		fmt.Sprintf("Despawned: %d", s.Despawned),
	}
}
