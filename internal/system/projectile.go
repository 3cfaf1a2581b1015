// internal/system/projectile.go
package system

import (
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// ProjectileSystem двигает снаряды и удаляет вылетевшие за поле.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	commands        entity.Commands
	removed         []event.BulletDespawnedData
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update — один шаг Эйлера для каждого снаряда. Удаление откладывается до
// конца прохода по мапе.
func (s *ProjectileSystem) Update() {
	s.removed = s.removed[:0]
	for id, bullet := range s.ecs.Bullets {
		tr, hasPos := s.ecs.Transforms[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			// Снаряд без позиции или скорости двигать нечем
			s.commands.Despawn(id)
			continue
		}

		tr.X += vel.X
		tr.Y += vel.Y

		if OutOfBounds(tr.Pos()) {
			s.commands.Despawn(id)
			s.removed = append(s.removed, event.BulletDespawnedData{
				ID:       id,
				Position: tr.Pos(),
				Lifetime: s.ecs.Tick - bullet.SpawnTick + 1,
			})
		}
	}

	if !s.commands.Pending() {
		return
	}
	_, despawned := s.commands.Apply(s.ecs)
	gone := make(map[types.EntityID]bool, len(despawned))
	for _, id := range despawned {
		gone[id] = true
	}
	for _, data := range s.removed {
		if gone[data.ID] {
			s.eventDispatcher.Dispatch(event.Event{Type: event.BulletDespawned, Tick: s.ecs.Tick, Data: data})
		}
	}
}

// Live возвращает позиции живых снарядов (для HUD и отладки).
func (s *ProjectileSystem) Live() map[types.EntityID]vmath.Vec2 {
	out := make(map[types.EntityID]vmath.Vec2, len(s.ecs.Bullets))
	for id := range s.ecs.Bullets {
		if tr, ok := s.ecs.Transforms[id]; ok {
			out[id] = tr.Pos()
		}
	}
	return out
}
