// internal/replay/scenario.go
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go-topdown-shooter/internal/input"

	"github.com/BurntSushi/toml"
)

// ErrEmptyScenario — в сценарии нет ни одного кадра.
var ErrEmptyScenario = errors.New("scenario has no frames")

// Scenario — заранее записанный ввод для безоконного прогона.
type Scenario struct {
	Name   string      `toml:"name"`
	Player []float64   `toml:"player"` // стартовая позиция игрока, [x, y]
	Frames []FrameSpec `toml:"frames"`
}

// FrameSpec — ввод, повторённый Repeat тиков подряд. Cursor задаётся в
// мировых координатах; отсутствие курсора означает "мышь вне окна".
type FrameSpec struct {
	Repeat int       `toml:"repeat"`
	Held   []string  `toml:"held"`
	Cursor []float64 `toml:"cursor"`
}

// LoadScenario читает сценарий из TOML-файла.
func LoadScenario(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	return DecodeScenario(f)
}

// DecodeScenario разбирает TOML и проверяет сценарий. Неизвестные ключи — ошибка.
func DecodeScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Scenario{}, fmt.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate проверяет имена действий и размерности координат.
func (s Scenario) Validate() error {
	if len(s.Frames) == 0 {
		return ErrEmptyScenario
	}
	if s.Player != nil && len(s.Player) != 2 {
		return fmt.Errorf("player must be [x, y], got %d values", len(s.Player))
	}
	for i, f := range s.Frames {
		if f.Repeat < 0 {
			return fmt.Errorf("frame %d: negative repeat %d", i, f.Repeat)
		}
		if f.Cursor != nil && len(f.Cursor) != 2 {
			return fmt.Errorf("frame %d: cursor must be [x, y], got %d values", i, len(f.Cursor))
		}
		if _, err := f.actions(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Ticks — сколько тиков займёт сценарий.
func (s Scenario) Ticks() int {
	n := 0
	for _, f := range s.Frames {
		n += f.repeat()
	}
	return n
}

func (f FrameSpec) repeat() int {
	if f.Repeat == 0 {
		return 1
	}
	return f.Repeat
}

func (f FrameSpec) actions() ([]input.Action, error) {
	out := make([]input.Action, 0, len(f.Held))
	for _, name := range f.Held {
		a, ok := input.ParseAction(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		out = append(out, a)
	}
	return out, nil
}
