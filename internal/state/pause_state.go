// internal/state/pause_state.go
package state

import (
	"go-topdown-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: тики не вызываются, кадр рисуется
// приглушённым поверх последнего состояния игры.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.SetPaused(true)
	s.previousState.renderer.Dimmed = true
}

func (s *PauseState) Update(deltaTime float64) {
	in := s.previousState.input
	if in.JustPressed(input.Quit) {
		s.stateMachine.RequestQuit()
		return
	}
	if in.JustPressed(input.Pause) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
}

func (s *PauseState) Exit() {}
