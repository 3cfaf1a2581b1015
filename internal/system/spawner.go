// internal/system/spawner.go
package system

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// ProjectileSpawnSystem создаёт снаряд на каждое нажатие спуска.
type ProjectileSpawnSystem struct {
	ecs             *entity.ECS
	input           input.Source
	eventDispatcher *event.Dispatcher
	gun             types.EntityID
	speed           float64
	commands        entity.Commands
}

func NewProjectileSpawnSystem(ecs *entity.ECS, in input.Source, eventDispatcher *event.Dispatcher, gun types.EntityID) *ProjectileSpawnSystem {
	if in == nil {
		in = input.None{}
	}
	return &ProjectileSpawnSystem{
		ecs:             ecs,
		input:           in,
		eventDispatcher: eventDispatcher,
		gun:             gun,
		speed:           config.BulletSpeed,
	}
}

// Update — один тик. Срабатывает только по фронту нажатия: удержание спуска
// не даёт очереди. Снаряд появляется в мировой точке ствола и летит вдоль
// локального смещения ствола от игрока.
func (s *ProjectileSpawnSystem) Update() {
	if !s.input.JustPressed(input.Fire) {
		return
	}
	local, ok := s.ecs.Transforms[s.gun]
	if !ok {
		return
	}
	dir, ok := local.Pos().Normalize()
	if !ok {
		// ствол ещё ни разу не наводился
		return
	}
	world, ok := s.ecs.WorldTransform(s.gun)
	if !ok {
		return
	}
	vel := dir.Scale(s.speed)

	s.commands.Spawn(entity.Bundle{
		Transform: component.Transform{X: world.X, Y: world.Y, Z: world.Z, Rotation: vel.Angle()},
		Velocity:  &component.Velocity{X: vel.X, Y: vel.Y},
		Bullet:    &component.Bullet{SpawnTick: s.ecs.Tick},
		Renderable: &component.Renderable{
			Shape: component.ShapeBox,
			Color: config.BulletColor,
			HalfW: config.BulletHalfLen,
			HalfH: config.BulletHalfWid,
		},
	})

	spawned, _ := s.commands.Apply(s.ecs)
	for _, id := range spawned {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BulletSpawned,
			Tick: s.ecs.Tick,
			Data: event.BulletSpawnedData{
				ID:       id,
				Position: vmath.Vec2{X: world.X, Y: world.Y},
				Velocity: vel,
			},
		})
	}
}
