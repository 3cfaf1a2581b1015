// internal/input/input.go
package input

// Action — логическое действие, к которому привязываются клавиши.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Fire
	Pause
	Quit
	actionCount
)

var actionNames = [actionCount]string{"up", "down", "left", "right", "fire", "pause", "quit"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions перечисляет все действия по порядку.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAction — обратное к String.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Source — то, что симуляция читает у движка каждый тик.
// Held — действие зажато сейчас; JustPressed — нажато именно в этом тике.
// Cursor возвращает экранные координаты курсора, ok == false, если курсор
// вне окна или окна нет.
type Source interface {
	Held(a Action) bool
	JustPressed(a Action) bool
	Cursor() (x, y float64, ok bool)
}

// None — источник без устройства: ничего не зажато, курсора нет.
type None struct{}

func (None) Held(Action) bool                { return false }
func (None) JustPressed(Action) bool         { return false }
func (None) Cursor() (x, y float64, ok bool) { return 0, 0, false }

var _ Source = None{}
