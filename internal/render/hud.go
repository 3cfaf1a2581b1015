// internal/render/hud.go
package render

import (
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD — счётчики в левом верхнем углу и затемнение на паузе.
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, s system.Stats, paused bool) {
	if paused {
		w, hgt := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt), config.PauseShadeColor, false)
	}
	lines := s.Lines()
	if paused {
		lines = append(lines, "PAUSED (P to resume)")
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.HUDOffsetX, float64(config.HUDOffsetY+i*config.HUDLineGap))
		op.ColorScale.ScaleWithColor(config.TextLightColor)
		text.Draw(screen, line, h.face, op)
	}
}
