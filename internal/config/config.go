// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Игровое поле: прямоугольник с центром в начале координат.
	XExtent = 600.0
	YExtent = 300.0

	TicksPerSecond = 60
	MaxDeltaTime   = 0.06

	PlayerStep    = 10.0 // смещение за тик на каждую зажатую клавишу
	PlayerRadius  = 30.0
	PlayerStartX  = 0.0
	PlayerStartY  = 1.0
	PlayerLayerZ  = 0.0
	GunOffset     = 30.0 // расстояние ствола от центра игрока
	GunLayerZ     = 1.0  // ствол рисуется поверх игрока
	GunHalfSize   = 5.0
	GunStartX     = -5.0
	GunStartY     = 30.0
	BulletSpeed   = 5.0 // единиц за тик
	BulletHalfLen = 10.0
	BulletHalfWid = 5.0

	HUDOffsetX = 12
	HUDOffsetY = 12
	HUDLineGap = 16

	FieldStrokeWidth = 1.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FieldColor      = color.RGBA{70, 100, 120, 220}
	PlayerColor     = color.RGBA{255, 0, 128, 255}
	GunColor        = color.RGBA{0, 255, 128, 255}
	BulletColor     = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseShadeColor = color.RGBA{0, 0, 0, 128}
)
