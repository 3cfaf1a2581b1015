package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `
window_title: demo
log:
  level: debug
  format: json
bindings:
  fire: [Enter]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.WindowTitle)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, []string{"Enter"}, s.Bindings.Fire)
	// не заданное в файле остаётся по умолчанию
	assert.Equal(t, []string{"W", "ArrowUp"}, s.Bindings.Up)
	assert.Equal(t, TicksPerSecond, s.TicksPerSecond)
}

func TestDecodeSettingsEmpty(t *testing.T) {
	s, err := DecodeSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestDecodeSettingsRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"tick rate":     "ticks_per_second: 0\n",
		"log level":     "log: {level: loud}\n",
		"log format":    "log: {format: xml}\n",
		"volume":        "audio: {volume: 2}\n",
		"empty binding": "bindings: {fire: []}\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSettings(strings.NewReader(data))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestDecodeSettingsUnknownField(t *testing.T) {
	_, err := DecodeSettings(strings.NewReader("speed: 3\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSettings)
}
