// internal/vmath/vec.go
package vmath

import "math"

// Vec2 — двумерный вектор в мировых координатах.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len возвращает длину вектора.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize возвращает единичный вектор того же направления.
// Для нулевого (или нечислового) вектора направление не определено: ok == false,
// и вызывающий код обязан пропустить зависящее от него вычисление.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Angle — угол вектора относительно оси X, atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Rotate поворачивает вектор на angle радиан против часовой стрелки.
func (v Vec2) Rotate(angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Clamp ограничивает значение отрезком [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
