// internal/render/renderer.go
package render

import (
	"image"
	"image/color"
	"sort"

	"go-topdown-shooter/internal/camera"
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует сущности с компонентом Renderable в их мировых координатах.
type Renderer struct {
	ecs   *entity.ECS
	cam   *camera.Camera2D
	white *ebiten.Image
	// Dimmed — рисовать приглушённо (пауза).
	Dimmed bool
}

func NewRenderer(ecs *entity.ECS, cam *camera.Camera2D) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		ecs:   ecs,
		cam:   cam,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

type drawItem struct {
	id    types.EntityID
	world component.Transform
	r     *component.Renderable
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	r.drawField(screen)

	// Сначала нижние слои, при равном слое — по ID, чтобы кадр не мерцал
	items := make([]drawItem, 0, len(r.ecs.Renderables))
	for id, rend := range r.ecs.Renderables {
		world, ok := r.ecs.WorldTransform(id)
		if !ok {
			continue
		}
		items = append(items, drawItem{id: id, world: world, r: rend})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].world.Z != items[j].world.Z {
			return items[i].world.Z < items[j].world.Z
		}
		return items[i].id < items[j].id
	})

	for _, it := range items {
		clr := it.r.Color
		if r.Dimmed {
			clr = DarkenColor(clr)
		}
		switch it.r.Shape {
		case component.ShapeCircle:
			sx, sy, ok := r.cam.WorldToScreen(it.world.Pos())
			if !ok {
				continue
			}
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), it.r.Radius*float32(r.cam.Zoom), clr, true)
		case component.ShapeBox:
			r.drawBox(screen, it.world, it.r.HalfW, it.r.HalfH, clr)
		}
	}
}

// drawField обводит игровое поле.
func (r *Renderer) drawField(screen *ebiten.Image) {
	x0, y0, ok := r.cam.WorldToScreen(vmath.Vec2{X: -config.XExtent, Y: config.YExtent})
	if !ok {
		return
	}
	x1, y1, _ := r.cam.WorldToScreen(vmath.Vec2{X: config.XExtent, Y: -config.YExtent})
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), config.FieldStrokeWidth, config.FieldColor, false)
}

// drawBox рисует прямоугольник, повёрнутый вместе с сущностью. Углы
// переводятся на экран по одному, так что разворот оси Y учитывается сам.
func (r *Renderer) drawBox(screen *ebiten.Image, world component.Transform, halfW, halfH float32, clr color.RGBA) {
	corners := [4]vmath.Vec2{
		{X: -float64(halfW), Y: -float64(halfH)},
		{X: float64(halfW), Y: -float64(halfH)},
		{X: float64(halfW), Y: float64(halfH)},
		{X: -float64(halfW), Y: float64(halfH)},
	}
	cr, cg, cb, ca := toVertexColor(clr)
	vs := make([]ebiten.Vertex, 0, 4)
	for _, c := range corners {
		sx, sy, ok := r.cam.WorldToScreen(c.Rotate(world.Rotation).Add(world.Pos()))
		if !ok {
			return
		}
		vs = append(vs, ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	screen.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
