// internal/component/projectile.go
package component

// Bullet помечает снаряд, который удаляется при выходе за игровое поле.
type Bullet struct {
	SpawnTick uint64 // тик, на котором снаряд был создан
}
