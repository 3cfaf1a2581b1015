// internal/camera/camera.go
package camera

import "go-topdown-shooter/internal/vmath"

// Projector переводит экранные координаты курсора в мировые.
type Projector interface {
	ScreenToWorld(sx, sy float64) (vmath.Vec2, bool)
}

// Camera2D — ортографическая камера: центр окна смотрит в точку (X, Y) мира,
// ось Y мира направлена вверх, экранная — вниз.
type Camera2D struct {
	X, Y      float64
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

var _ Projector = (*Camera2D)(nil)

// NewCamera2D создаёт камеру, смотрящую в начало координат без масштаба.
func NewCamera2D(viewportW, viewportH int) *Camera2D {
	return &Camera2D{
		Zoom:      1,
		ViewportW: float64(viewportW),
		ViewportH: float64(viewportH),
	}
}

// Ready — можно ли сейчас проецировать (окно имеет размер, масштаб положительный).
func (c *Camera2D) Ready() bool {
	return c != nil && c.ViewportW > 0 && c.ViewportH > 0 && c.Zoom > 0
}

func (c *Camera2D) ScreenToWorld(sx, sy float64) (vmath.Vec2, bool) {
	if !c.Ready() {
		return vmath.Vec2{}, false
	}
	return vmath.Vec2{
		X: c.X + (sx-c.ViewportW/2)/c.Zoom,
		Y: c.Y - (sy-c.ViewportH/2)/c.Zoom,
	}, true
}

// WorldToScreen — обратное преобразование, нужно для отрисовки.
func (c *Camera2D) WorldToScreen(p vmath.Vec2) (sx, sy float64, ok bool) {
	if !c.Ready() {
		return 0, 0, false
	}
	return (p.X-c.X)*c.Zoom + c.ViewportW/2, c.ViewportH/2 - (p.Y-c.Y)*c.Zoom, true
}

// Resize обновляет размер окна (ebiten.Layout).
func (c *Camera2D) Resize(w, h int) {
	c.ViewportW = float64(w)
	c.ViewportH = float64(h)
}
