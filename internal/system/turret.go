// internal/system/turret.go
package system

import (
	"go-topdown-shooter/internal/camera"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/types"
)

// TurretAimSystem держит ствол на расстоянии GunOffset от игрока и
// поворачивает его в сторону курсора.
type TurretAimSystem struct {
	ecs       *entity.ECS
	input     input.Source
	projector camera.Projector
	player    types.EntityID
	gun       types.EntityID
}

func NewTurretAimSystem(ecs *entity.ECS, in input.Source, projector camera.Projector, player, gun types.EntityID) *TurretAimSystem {
	if in == nil {
		in = input.None{}
	}
	return &TurretAimSystem{ecs: ecs, input: in, projector: projector, player: player, gun: gun}
}

// Update — один тик. Если курсора нет, камера не готова или курсор ровно
// над центром игрока, ствол сохраняет прежнее положение.
func (s *TurretAimSystem) Update() {
	sx, sy, ok := s.input.Cursor()
	if !ok || s.projector == nil {
		return
	}
	cursor, ok := s.projector.ScreenToWorld(sx, sy)
	if !ok {
		return
	}
	playerPos, ok := s.ecs.WorldPos(s.player)
	if !ok {
		return
	}
	gun, ok := s.ecs.Transforms[s.gun]
	if !ok {
		return
	}

	direction := cursor.Sub(playerPos)
	dir, ok := direction.Normalize()
	if !ok {
		return
	}

	gun.Rotation = direction.Angle()
	gun.SetPos(dir.Scale(config.GunOffset))
	gun.Z = config.GunLayerZ
}
