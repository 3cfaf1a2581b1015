// component/render.go
package component

import "image/color"

// Shape — форма, которой рисуется сущность.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeBox
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Shape  Shape
	Color  color.RGBA
	Radius float32 // для ShapeCircle
	HalfW  float32 // для ShapeBox, вдоль локальной оси X
	HalfH  float32
}
