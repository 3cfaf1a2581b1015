// internal/replay/run.go
package replay

import (
	"fmt"

	game "go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/camera"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/vmath"

	"go.uber.org/zap"
)

// Run прогоняет сценарий без окна и возвращает итоговый снимок.
// onTick, если задан, вызывается после каждого тика.
func Run(s Scenario, logger *zap.Logger, onTick func(*game.Game)) (game.Snapshot, error) {
	if err := s.Validate(); err != nil {
		return game.Snapshot{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	in := input.NewScripted()
	cam := camera.NewCamera2D(config.ScreenWidth, config.ScreenHeight)
	opts := game.Options{Input: in, Camera: cam, Logger: logger}
	if s.Player != nil {
		opts.PlayerStart = &vmath.Vec2{X: s.Player[0], Y: s.Player[1]}
	}
	g := game.NewGame(opts)
	if err := g.CheckSingletons(); err != nil {
		return game.Snapshot{}, err
	}

	for i, spec := range s.Frames {
		held, err := spec.actions()
		if err != nil {
			return game.Snapshot{}, fmt.Errorf("frame %d: %w", i, err)
		}
		frame := input.Frame{Held: held}
		if spec.Cursor != nil {
			sx, sy, ok := cam.WorldToScreen(vmath.Vec2{X: spec.Cursor[0], Y: spec.Cursor[1]})
			frame.CursorX, frame.CursorY, frame.HasCursor = sx, sy, ok
		}
		for r := 0; r < spec.repeat(); r++ {
			in.SetFrame(frame)
			g.Tick()
			if onTick != nil {
				onTick(g)
			}
		}
	}

	snap := g.Snapshot()
	logger.Info("scenario finished",
		zap.String("name", s.Name),
		zap.Uint64("ticks", snap.Tick),
		zap.Int("bullets", len(snap.Bullets)),
		zap.Uint64("checksum", snap.Checksum()),
	)
	return snap, nil
}
