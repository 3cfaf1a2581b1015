// internal/component/movement.go
package component

import (
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// Transform — локальное преобразование сущности.
// Для сущности с родителем координаты заданы в системе родителя.
type Transform struct {
	X, Y     float64
	Z        float64 // слой отрисовки
	Rotation float64 // радианы, вокруг оси Z
}

// Pos возвращает плоскую часть позиции.
func (t Transform) Pos() vmath.Vec2 { return vmath.Vec2{X: t.X, Y: t.Y} }

// SetPos меняет X и Y, не трогая слой и поворот.
func (t *Transform) SetPos(p vmath.Vec2) {
	t.X = p.X
	t.Y = p.Y
}

// Velocity — скорость в единицах за тик.
type Velocity struct {
	X, Y float64
}

func (v Velocity) Vec() vmath.Vec2 { return vmath.Vec2{X: v.X, Y: v.Y} }

// Parent связывает дочернюю сущность с родителем по идентификатору.
type Parent struct {
	ID types.EntityID
}
