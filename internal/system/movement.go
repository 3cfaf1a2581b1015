// internal/system/movement.go
package system

import (
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// PlayerControlSystem двигает игрока по зажатым клавишам и держит его в пределах поля.
type PlayerControlSystem struct {
	ecs    *entity.ECS
	input  input.Source
	player types.EntityID
	step   float64
}

func NewPlayerControlSystem(ecs *entity.ECS, in input.Source, player types.EntityID) *PlayerControlSystem {
	if in == nil {
		in = input.None{}
	}
	return &PlayerControlSystem{ecs: ecs, input: in, player: player, step: config.PlayerStep}
}

// Update — один тик. Противоположные клавиши гасят друг друга, диагональ —
// сумма смещений по осям без нормализации.
func (s *PlayerControlSystem) Update() {
	tr, ok := s.ecs.Transforms[s.player]
	if !ok {
		return
	}

	var delta vmath.Vec2
	if s.input.Held(input.MoveUp) {
		delta.Y += s.step
	}
	if s.input.Held(input.MoveDown) {
		delta.Y -= s.step
	}
	if s.input.Held(input.MoveLeft) {
		delta.X -= s.step
	}
	if s.input.Held(input.MoveRight) {
		delta.X += s.step
	}

	tr.SetPos(ClampToField(tr.Pos().Add(delta)))
}
