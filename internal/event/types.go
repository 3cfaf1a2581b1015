// internal/event/types.go
package event

import (
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"
)

const (
	BulletSpawned   EventType = "BulletSpawned"   // снаряд создан, Data: BulletSpawnedData
	BulletDespawned EventType = "BulletDespawned" // снаряд вылетел за поле, Data: BulletDespawnedData
	GamePaused      EventType = "GamePaused"
	GameResumed     EventType = "GameResumed"
)

type BulletSpawnedData struct {
	ID       types.EntityID
	Position vmath.Vec2
	Velocity vmath.Vec2
}

type BulletDespawnedData struct {
	ID       types.EntityID
	Position vmath.Vec2
	Lifetime uint64 // сколько тиков прожил снаряд
}
