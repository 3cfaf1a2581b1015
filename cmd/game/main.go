// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	game "go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/audio"
	"go-topdown-shooter/internal/camera"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/logging"
	"go-topdown-shooter/internal/render"
	"go-topdown-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("config", "settings.yaml", "path to YAML settings (optional)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	in, err := state.NewEbitenInput(settings.Bindings, config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		logger.Fatal("bad key bindings", zap.Error(err))
	}
	cam := camera.NewCamera2D(config.ScreenWidth, config.ScreenHeight)
	g := game.NewGame(game.Options{Input: in, Camera: cam, Logger: logger})
	if err := g.CheckSingletons(); err != nil {
		logger.Fatal("startup invariant broken", zap.Error(err))
	}

	if settings.Audio.Enabled {
		shots, err := audio.NewShotPlayer(settings.Audio.Volume, nil, logger)
		if err != nil {
			// Без звука играть можно
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer shots.Close()
			g.EventDispatcher.Subscribe(event.BulletSpawned, shots)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, g, in, render.NewRenderer(g.ECS, cam), render.NewHUD()))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	ebiten.SetTPS(settings.TicksPerSecond)
	logger.Info("starting", zap.Int("tps", settings.TicksPerSecond), zap.String("config", *settingsPath))
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
	logger.Info("window closed", zap.Uint64("ticks", g.ECS.Tick))
}
