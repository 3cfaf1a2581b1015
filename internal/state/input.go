// internal/state/input.go
package state

import (
	"fmt"

	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput читает клавиатуру и мышь через ebiten по раскладке из настроек.
type EbitenInput struct {
	bindings map[input.Action][]ebiten.Key
	width    int
	height   int
}

var _ input.Source = (*EbitenInput)(nil)

// NewEbitenInput разбирает имена клавиш (как их печатает ebiten.Key.String()).
func NewEbitenInput(b config.Bindings, width, height int) (*EbitenInput, error) {
	names := map[input.Action][]string{
		input.MoveUp:    b.Up,
		input.MoveDown:  b.Down,
		input.MoveLeft:  b.Left,
		input.MoveRight: b.Right,
		input.Fire:      b.Fire,
		input.Pause:     b.Pause,
		input.Quit:      b.Quit,
	}
	bindings := make(map[input.Action][]ebiten.Key, len(names))
	for action, keys := range names {
		for _, name := range keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("%w: key %q bound to %s: %v", config.ErrInvalidSettings, name, action, err)
			}
			bindings[action] = append(bindings[action], k)
		}
	}
	return &EbitenInput{bindings: bindings, width: width, height: height}, nil
}

func (in *EbitenInput) Held(a input.Action) bool {
	for _, k := range in.bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) JustPressed(a input.Action) bool {
	for _, k := range in.bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Cursor — позиция мыши в логических координатах окна; вне окна курсора нет.
func (in *EbitenInput) Cursor() (x, y float64, ok bool) {
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 || cx >= in.width || cy >= in.height {
		return 0, 0, false
	}
	return float64(cx), float64(cy), true
}
