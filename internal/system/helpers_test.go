package system

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// worldProjector считает экранные координаты уже мировыми.
type worldProjector struct{}

func (worldProjector) ScreenToWorld(sx, sy float64) (vmath.Vec2, bool) {
	return vmath.Vec2{X: sx, Y: sy}, true
}

// brokenProjector — камеры нет.
type brokenProjector struct{}

func (brokenProjector) ScreenToWorld(float64, float64) (vmath.Vec2, bool) {
	return vmath.Vec2{}, false
}

func newPlayerAndGun(ecs *entity.ECS, x, y float64) (player, gun types.EntityID) {
	player = ecs.Spawn(entity.Bundle{
		Transform: component.Transform{X: x, Y: y},
		Player:    &component.Player{},
	})
	gun = ecs.Spawn(entity.Bundle{
		Parent:    player,
		Transform: component.Transform{X: config.GunStartX, Y: config.GunStartY, Z: config.GunLayerZ},
		Gun:       &component.Gun{},
	})
	return player, gun
}

func spawnBullet(ecs *entity.ECS, pos, vel vmath.Vec2) types.EntityID {
	return ecs.Spawn(entity.Bundle{
		Transform: component.Transform{X: pos.X, Y: pos.Y},
		Velocity:  &component.Velocity{X: vel.X, Y: vel.Y},
		Bullet:    &component.Bullet{SpawnTick: ecs.Tick},
	})
}
