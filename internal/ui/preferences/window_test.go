package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_ShowsSettings(t *testing.T) {
	app := test.NewTempApp(t)
	settings := DefaultSettings()
	settings.DefaultMode = "stopwatch"
	settings.Volume = -2
	settings.SoundEnabled = false

	prefs := New(app, settings, nil)

	assert.Equal(t, "stopwatch", prefs.mode.Selected)
	assert.Equal(t, -2.0, prefs.volume.Value)
	assert.False(t, prefs.sound.Checked)
	assert.True(t, prefs.system.Checked)
	assert.Equal(t, "Timer done!", prefs.message.Text)
}

func TestWindow_SaveCollectsValues(t *testing.T) {
	app := test.NewTempApp(t)
	var saved *Settings
	prefs := New(app, DefaultSettings(), func(updated Settings) {
		saved = &updated
	})

	prefs.mode.SetSelected("stopwatch")
	prefs.sound.SetChecked(false)
	prefs.flash.SetChecked(false)
	prefs.volume.SetValue(-1)
	prefs.message.SetText("  Tea is ready  ")
	test.Tap(prefs.saveButton)

	require.NotNil(t, saved)
	assert.Equal(t, "stopwatch", saved.DefaultMode)
	assert.False(t, saved.SoundEnabled)
	assert.False(t, saved.FlashOnComplete)
	assert.True(t, saved.SystemNotification)
	assert.Equal(t, -1.0, saved.Volume)
	assert.Equal(t, "Tea is ready", saved.NotificationMessage)
	assert.Equal(t, DefaultSettings().WindowWidth, saved.WindowWidth)
}

func TestWindow_BlankMessageKeepsPrevious(t *testing.T) {
	app := test.NewTempApp(t)
	var saved Settings
	prefs := New(app, DefaultSettings(), func(updated Settings) {
		saved = updated
	})

	prefs.message.SetText("   ")
	test.Tap(prefs.saveButton)

	assert.Equal(t, "Timer done!", saved.NotificationMessage)
}

func TestNormalizeModeAndVolume(t *testing.T) {
	assert.Equal(t, "timer", normalizeMode(""))
	assert.Equal(t, "timer", normalizeMode("sundial"))
	assert.Equal(t, "stopwatch", normalizeMode("stopwatch"))

	assert.Equal(t, MinVolume, clampVolume(-10))
	assert.Equal(t, MaxVolume, clampVolume(4))
	assert.Equal(t, 0.5, clampVolume(0.5))
}

func TestSettings_KeeperConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.DefaultMode = "stopwatch"

	assert.Equal(t, "stopwatch", settings.KeeperConfig().DefaultMode)
}
