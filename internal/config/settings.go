// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings возвращается, если файл настроек прочитан, но значения некорректны.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — параметры, которые можно поменять без пересборки.
type Settings struct {
	WindowTitle    string   `yaml:"window_title"`
	TicksPerSecond int      `yaml:"ticks_per_second"`
	Log            Log      `yaml:"log"`
	Audio          Audio    `yaml:"audio"`
	Bindings       Bindings `yaml:"bindings"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console или json
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// Bindings — имена клавиш в формате ebiten (ebiten.Key.String()) для каждого действия.
type Bindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
	Pause []string `yaml:"pause"`
	Quit  []string `yaml:"quit"`
}

// DefaultSettings — WASD + стрелки, огонь на пробел, Escape закрывает окно.
func DefaultSettings() Settings {
	return Settings{
		WindowTitle:    "Top-Down Shooter",
		TicksPerSecond: TicksPerSecond,
		Log:            Log{Level: "info", Format: "console"},
		Audio:          Audio{Enabled: true, Volume: 0.5},
		Bindings: Bindings{
			Up:    []string{"W", "ArrowUp"},
			Down:  []string{"S", "ArrowDown"},
			Left:  []string{"A", "ArrowLeft"},
			Right: []string{"D", "ArrowRight"},
			Fire:  []string{"Space"},
			Pause: []string{"P"},
			Quit:  []string{"Escape"},
		},
	}
}

// LoadSettings читает YAML-файл поверх значений по умолчанию.
// Отсутствующий файл — не ошибка: возвращаются настройки по умолчанию.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// DecodeSettings разбирает YAML из r. Незаданные поля берутся из DefaultSettings.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate проверяет значения. Имена клавиш проверяются при построении раскладки в state.
func (s Settings) Validate() error {
	if s.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks_per_second must be positive, got %d", ErrInvalidSettings, s.TicksPerSecond)
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidSettings, s.Log.Level)
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidSettings, s.Log.Format)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f out of [0,1]", ErrInvalidSettings, s.Audio.Volume)
	}
	for name, keys := range s.Bindings.byAction() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %q", ErrInvalidSettings, name)
		}
	}
	return nil
}

// byAction возвращает привязки, сгруппированные по имени действия.
func (b Bindings) byAction() map[string][]string {
	return map[string][]string{
		"up":    b.Up,
		"down":  b.Down,
		"left":  b.Left,
		"right": b.Right,
		"fire":  b.Fire,
		"pause": b.Pause,
		"quit":  b.Quit,
	}
}
