// internal/entity/ecs.go
package entity

import (
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/types"
)

// ECS хранит компоненты в отдельных мапах, ключ — идентификатор сущности.
type ECS struct {
	NextID      types.EntityID
	Tick        uint64
	Transforms  map[types.EntityID]*component.Transform
	Parents     map[types.EntityID]*component.Parent
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Guns        map[types.EntityID]*component.Gun
	Bullets     map[types.EntityID]*component.Bullet
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Parents:     make(map[types.EntityID]*component.Parent),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Players:     make(map[types.EntityID]*component.Player),
		Guns:        make(map[types.EntityID]*component.Gun),
		Bullets:     make(map[types.EntityID]*component.Bullet),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Bundle — набор компонентов для создания сущности за один вызов.
// Nil-поля не добавляются.
type Bundle struct {
	Transform  component.Transform
	Parent     types.EntityID
	Velocity   *component.Velocity
	Renderable *component.Renderable
	Player     *component.Player
	Gun        *component.Gun
	Bullet     *component.Bullet
}

// Spawn создаёт сущность из набора компонентов.
func (ecs *ECS) Spawn(b Bundle) types.EntityID {
	id := ecs.NewEntity()
	t := b.Transform
	ecs.Transforms[id] = &t
	if b.Parent != types.None {
		ecs.Parents[id] = &component.Parent{ID: b.Parent}
	}
	if b.Velocity != nil {
		v := *b.Velocity
		ecs.Velocities[id] = &v
	}
	if b.Renderable != nil {
		r := *b.Renderable
		ecs.Renderables[id] = &r
	}
	if b.Player != nil {
		ecs.Players[id] = b.Player
	}
	if b.Gun != nil {
		ecs.Guns[id] = b.Gun
	}
	if b.Bullet != nil {
		bl := *b.Bullet
		ecs.Bullets[id] = &bl
	}
	return id
}

// Exists — есть ли у сущности преобразование (любая живая сущность его имеет).
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// Despawn удаляет сущность вместе с потомками. Повторный вызов для
// уже удалённой сущности ничего не делает и возвращает false.
func (ecs *ECS) Despawn(id types.EntityID) bool {
	if !ecs.Exists(id) {
		return false
	}
	for _, child := range ecs.Children(id) {
		ecs.Despawn(child)
	}
	delete(ecs.Transforms, id)
	delete(ecs.Parents, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Guns, id)
	delete(ecs.Bullets, id)
	return true
}

// Children возвращает прямых потомков сущности.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	var out []types.EntityID
	for child, p := range ecs.Parents {
		if p.ID == id {
			out = append(out, child)
		}
	}
	return out
}
