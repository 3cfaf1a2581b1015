// internal/entity/hierarchy.go
package entity

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

// maxDepth ограничивает обход цепочки родителей на случай цикла.
const maxDepth = 64

// WorldTransform вычисляет мировое преобразование сущности, сворачивая
// локальные преобразования вдоль цепочки родителей. Результат не кэшируется:
// если родитель сдвинулся в этом тике, потомок сразу видит новую позицию.
// ok == false, если сущности нет, цепочка оборвана или зациклена.
func (ecs *ECS) WorldTransform(id types.EntityID) (component.Transform, bool) {
	local, ok := ecs.Transforms[id]
	if !ok {
		return component.Transform{}, false
	}
	world := *local
	cur := id
	for depth := 0; ; depth++ {
		p, hasParent := ecs.Parents[cur]
		if !hasParent {
			return world, true
		}
		if depth >= maxDepth {
			return component.Transform{}, false
		}
		pt, ok := ecs.Transforms[p.ID]
		if !ok {
			return component.Transform{}, false
		}
		world = Compose(*pt, world)
		cur = p.ID
	}
}

// Compose применяет родительское преобразование к локальному:
// позиция поворачивается и сдвигается, углы и слои складываются.
func Compose(parent, local component.Transform) component.Transform {
	pos := local.Pos().Rotate(parent.Rotation).Add(parent.Pos())
	return component.Transform{
		X:        pos.X,
		Y:        pos.Y,
		Z:        parent.Z + local.Z,
		Rotation: parent.Rotation + local.Rotation,
	}
}

// WorldPos — только плоская часть мирового преобразования.
func (ecs *ECS) WorldPos(id types.EntityID) (vmath.Vec2, bool) {
	t, ok := ecs.WorldTransform(id)
	return t.Pos(), ok
}
