package storage

import (
	"os"
	"path/filepath"
	"testing"

	"simpletimer/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/cfg", "SimpleTimer", "settings.yaml"), SettingsPath("/cfg", "SimpleTimer"))
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing", "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := SettingsPath(t.TempDir(), "SimpleTimer")
	settings := preferences.DefaultSettings()
	settings.DefaultMode = "stopwatch"
	settings.SoundEnabled = false
	settings.Volume = -1.5
	settings.FlashOnComplete = false
	settings.NotificationMessage = "Pasta!"
	settings.WindowWidth = 640
	settings.WindowHeight = 400

	require.NoError(t, SaveSettings(path, settings))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettings_OutOfRangeKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte(`default_mode: sundial
volume: 9
notification_message: ""
window_width: 10
window_height: 10
sound_enabled: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.DefaultMode, settings.DefaultMode)
	assert.Equal(t, defaults.Volume, settings.Volume)
	assert.Equal(t, defaults.NotificationMessage, settings.NotificationMessage)
	assert.Equal(t, defaults.WindowWidth, settings.WindowWidth)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.SystemNotification)
}

func TestLoadSettings_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: [unclosed"), 0o644))

	settings, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
