// internal/component/turret.go
package component

// Gun помечает ствол игрока. Ствол всегда дочерний к Player и
// поворачивается в сторону курсора.
type Gun struct{}
