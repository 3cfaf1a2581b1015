// internal/system/utils.go
package system

import (
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/vmath"
)

// OutOfBounds — вышла ли точка за игровое поле. Граница включительно
// принадлежит полю: точка ровно на краю остаётся внутри.
func OutOfBounds(p vmath.Vec2) bool {
	return p.X > config.XExtent || p.X < -config.XExtent ||
		p.Y > config.YExtent || p.Y < -config.YExtent
}

// ClampToField прижимает точку к игровому полю по каждой оси отдельно.
func ClampToField(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, -config.XExtent, config.XExtent),
		Y: vmath.Clamp(p.Y, -config.YExtent, config.YExtent),
	}
}
