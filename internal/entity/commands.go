// internal/entity/commands.go
package entity

import "go-topdown-shooter/internal/types"

// Commands копит создание и удаление сущностей во время прохода системы
// и применяет их после, чтобы не менять мапы во время итерации.
type Commands struct {
	spawns   []Bundle
	despawns []types.EntityID
}

func (c *Commands) Spawn(b Bundle) {
	c.spawns = append(c.spawns, b)
}

func (c *Commands) Despawn(id types.EntityID) {
	c.despawns = append(c.despawns, id)
}

// Pending — есть ли неприменённые команды.
func (c *Commands) Pending() bool {
	return len(c.spawns) > 0 || len(c.despawns) > 0
}

// Apply выполняет накопленные команды: сначала удаления, затем создания.
// Возвращает реально удалённые (без повторов) и созданные сущности.
func (c *Commands) Apply(ecs *ECS) (spawned, despawned []types.EntityID) {
	for _, id := range c.despawns {
		if ecs.Despawn(id) {
			despawned = append(despawned, id)
		}
	}
	for _, b := range c.spawns {
		spawned = append(spawned, ecs.Spawn(b))
	}
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	return spawned, despawned
}
