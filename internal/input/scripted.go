// internal/input/scripted.go
package input

// Frame — состояние ввода на один тик.
type Frame struct {
	Held      []Action
	CursorX   float64
	CursorY   float64
	HasCursor bool
}

// Scripted воспроизводит заранее заданные кадры ввода: для тестов и
// безоконного прогона сценариев. JustPressed вычисляется по фронту
// относительно предыдущего кадра, как у настоящей клавиатуры.
type Scripted struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	edges   EdgeDetector
	cursorX float64
	cursorY float64
	cursor  bool
}

var _ Source = (*Scripted)(nil)

func NewScripted() *Scripted {
	return &Scripted{}
}

// SetFrame выставляет состояние на следующий тик.
func (s *Scripted) SetFrame(f Frame) {
	s.held = [actionCount]bool{}
	for _, a := range f.Held {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
	for a := Action(0); a < actionCount; a++ {
		s.pressed[a] = s.edges.Step(a, s.held[a])
	}
	s.cursorX, s.cursorY, s.cursor = f.CursorX, f.CursorY, f.HasCursor
}

func (s *Scripted) Held(a Action) bool {
	return a >= 0 && a < actionCount && s.held[a]
}

func (s *Scripted) JustPressed(a Action) bool {
	return a >= 0 && a < actionCount && s.pressed[a]
}

func (s *Scripted) Cursor() (x, y float64, ok bool) {
	return s.cursorX, s.cursorY, s.cursor
}
