// internal/component/player.go
package component

// Player помечает единственную управляемую игроком сущность.
type Player struct{}
