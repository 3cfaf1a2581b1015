// internal/state/game_state.go
package state

import (
	game "go-topdown-shooter/internal/app"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState — состояние игры: каждый Update хоста — один тик симуляции.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	input    input.Source
	renderer *render.Renderer
	hud      *render.HUD
}

func NewGameState(sm *StateMachine, g *game.Game, in input.Source, renderer *render.Renderer, hud *render.HUD) *GameState {
	return &GameState{
		sm:       sm,
		game:     g,
		input:    in,
		renderer: renderer,
		hud:      hud,
	}
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
	g.renderer.Dimmed = false
}

// Update: ebiten сам вызывает Update с фиксированной частотой (TPS), поэтому
// deltaTime для шага симуляции не нужен.
func (g *GameState) Update(deltaTime float64) {
	if g.input.JustPressed(input.Quit) {
		g.sm.RequestQuit()
		return
	}
	if g.input.JustPressed(input.Pause) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.game.Tick()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.hud.Draw(screen, g.game.Stats(), g.game.Paused())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
