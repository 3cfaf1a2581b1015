// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-topdown-shooter/internal/camera"
	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/system"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"

	"go.uber.org/zap"
)

// ErrMissingSingleton — игрок или ствол пропали. Без них симуляция не определена.
var ErrMissingSingleton = errors.New("missing singleton entity")

// Handles — идентификаторы сущностей, которые существуют всё время жизни игры.
// Получаются один раз при создании и передаются системам явно.
type Handles struct {
	Player types.EntityID
	Gun    types.EntityID
}

// Options — зависимости, которые Game получает от хоста.
type Options struct {
	Input       input.Source
	Camera      *camera.Camera2D
	Logger      *zap.Logger
	PlayerStart *vmath.Vec2 // nil — стартовая точка из config
}

// Game holds the main game state and logic.
type Game struct {
	ECS                   *entity.ECS
	Handles               Handles
	Camera                *camera.Camera2D
	EventDispatcher       *event.Dispatcher
	PlayerControlSystem   *system.PlayerControlSystem
	TurretAimSystem       *system.TurretAimSystem
	ProjectileSpawnSystem *system.ProjectileSpawnSystem
	ProjectileSystem      *system.ProjectileSystem
	StatsSystem           *system.StatsSystem

	log     *zap.Logger
	ticking bool
	paused  bool
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	in := opts.Input
	if in == nil {
		in = input.None{}
	}
	cam := opts.Camera
	if cam == nil {
		cam = camera.NewCamera2D(config.ScreenWidth, config.ScreenHeight)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Camera:          cam,
		EventDispatcher: eventDispatcher,
		log:             logger,
	}

	start := vmath.Vec2{X: config.PlayerStartX, Y: config.PlayerStartY}
	if opts.PlayerStart != nil {
		start = system.ClampToField(*opts.PlayerStart)
	}
	g.Handles = g.createPlayerEntity(start)

	g.PlayerControlSystem = system.NewPlayerControlSystem(ecs, in, g.Handles.Player)
	g.TurretAimSystem = system.NewTurretAimSystem(ecs, in, cam, g.Handles.Player, g.Handles.Gun)
	g.ProjectileSpawnSystem = system.NewProjectileSpawnSystem(ecs, in, eventDispatcher, g.Handles.Gun)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(ecs)

	eventDispatcher.Subscribe(event.BulletSpawned, g.StatsSystem)
	eventDispatcher.Subscribe(event.BulletDespawned, g.StatsSystem)

	listener := &GameEventListener{log: logger}
	eventDispatcher.Subscribe(event.BulletSpawned, listener)
	eventDispatcher.Subscribe(event.BulletDespawned, listener)
	eventDispatcher.Subscribe(event.GamePaused, listener)
	eventDispatcher.Subscribe(event.GameResumed, listener)

	logger.Info("game created",
		zap.Uint64("player", uint64(g.Handles.Player)),
		zap.Uint64("gun", uint64(g.Handles.Gun)),
		zap.Float64("x", start.X),
		zap.Float64("y", start.Y),
	)
	return g
}

// createPlayerEntity создаёт игрока и ствол — дочернюю сущность игрока.
func (g *Game) createPlayerEntity(start vmath.Vec2) Handles {
	player := g.ECS.Spawn(entity.Bundle{
		Transform: component.Transform{X: start.X, Y: start.Y, Z: config.PlayerLayerZ},
		Player:    &component.Player{},
		Renderable: &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.PlayerColor,
			Radius: config.PlayerRadius,
		},
	})
	gun := g.ECS.Spawn(entity.Bundle{
		Parent:    player,
		Transform: component.Transform{X: config.GunStartX, Y: config.GunStartY, Z: config.GunLayerZ},
		Gun:       &component.Gun{},
		Renderable: &component.Renderable{
			Shape: component.ShapeBox,
			Color: config.GunColor,
			HalfW: config.GunHalfSize,
			HalfH: config.GunHalfSize,
		},
	})
	return Handles{Player: player, Gun: gun}
}

// Tick — один шаг симуляции. Порядок фиксирован: игрок, наведение ствола,
// выстрел, снаряды. Ствол наводится от новой позиции игрока до того, как
// выстрел прочитает его положение; снаряд, созданный в тике, в нём же и
// сдвигается.
func (g *Game) Tick() {
	if g.ticking {
		panic("app: Tick called while a tick is running")
	}
	g.ticking = true
	defer func() { g.ticking = false }()

	g.MustSingletons()
	g.ECS.Tick++

	g.PlayerControlSystem.Update()
	g.TurretAimSystem.Update()
	g.ProjectileSpawnSystem.Update()
	g.ProjectileSystem.Update()
	g.StatsSystem.Update()
}

// CheckSingletons проверяет, что игрок и ствол на месте и ствол всё ещё дочерний к игроку.
func (g *Game) CheckSingletons() error {
	h := g.Handles
	if _, ok := g.ECS.Players[h.Player]; !ok || !g.ECS.Exists(h.Player) {
		return fmt.Errorf("%w: player %d", ErrMissingSingleton, h.Player)
	}
	if _, ok := g.ECS.Guns[h.Gun]; !ok || !g.ECS.Exists(h.Gun) {
		return fmt.Errorf("%w: gun %d", ErrMissingSingleton, h.Gun)
	}
	if p, ok := g.ECS.Parents[h.Gun]; !ok || p.ID != h.Player {
		return fmt.Errorf("%w: gun %d is detached from player %d", ErrMissingSingleton, h.Gun, h.Player)
	}
	return nil
}

// MustSingletons паникует, если CheckSingletons вернул ошибку.
func (g *Game) MustSingletons() {
	if err := g.CheckSingletons(); err != nil {
		g.log.Error("singleton invariant broken", zap.Error(err))
		panic(err)
	}
}

// SetPaused меняет флаг паузы и сообщает об этом подписчикам.
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	typ := event.GameResumed
	if paused {
		typ = event.GamePaused
	}
	g.EventDispatcher.Dispatch(event.Event{Type: typ, Tick: g.ECS.Tick})
}

func (g *Game) Paused() bool { return g.paused }

func (g *Game) Stats() system.Stats { return g.StatsSystem.Stats() }

// GameEventListener пишет в лог события жизненного цикла.
type GameEventListener struct {
	log *zap.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.BulletSpawnedData:
		l.log.Debug("bullet spawned",
			zap.Uint64("tick", e.Tick),
			zap.Uint64("id", uint64(data.ID)),
			zap.Float64("x", data.Position.X),
			zap.Float64("y", data.Position.Y),
			zap.Float64("vx", data.Velocity.X),
			zap.Float64("vy", data.Velocity.Y),
		)
	case event.BulletDespawnedData:
		l.log.Debug("bullet despawned",
			zap.Uint64("tick", e.Tick),
			zap.Uint64("id", uint64(data.ID)),
			zap.Uint64("lifetime", data.Lifetime),
		)
	default:
		l.log.Info("game state changed", zap.String("event", string(e.Type)), zap.Uint64("tick", e.Tick))
	}
}
