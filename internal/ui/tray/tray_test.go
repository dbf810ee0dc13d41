package tray

import (
	"testing"

	"simpletimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuRecorder struct {
	menus []*fyne.Menu
}

func (recorder *menuRecorder) SetSystemTrayMenu(menu *fyne.Menu) {
	recorder.menus = append(recorder.menus, menu)
}

func TestManager_Render(t *testing.T) {
	recorder := &menuRecorder{}
	manager := New(recorder, Callbacks{})
	require.Len(t, recorder.menus, 1)

	manager.Render(timekeeper.Snapshot{
		Mode:     timekeeper.ModeTimer,
		RunState: timekeeper.RunStateRunning,
		Input:    timekeeper.Duration{Seconds: 90},
		Counter:  75,
	})

	assert.Equal(t, "Timer: 00:01:15", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.False(t, manager.toggleItem.Disabled)
	assert.True(t, manager.timerItem.Checked)
	assert.False(t, manager.stopwatchItem.Checked)
	assert.Len(t, recorder.menus, 2)
}

func TestManager_RenderPausedEmptyTimer(t *testing.T) {
	manager := New(&menuRecorder{}, Callbacks{})

	manager.Render(timekeeper.Snapshot{Mode: timekeeper.ModeTimer, RunState: timekeeper.RunStatePaused})

	assert.Equal(t, "Timer: 00:00:00 (paused)", manager.statusItem.Label)
	assert.Equal(t, "Start", manager.toggleItem.Label)
	assert.True(t, manager.toggleItem.Disabled)
}

func TestManager_Callbacks(t *testing.T) {
	var toggled, reset, shown, prefs, quit int
	var modes []timekeeper.Mode
	manager := New(&menuRecorder{}, Callbacks{
		OnShow:        func() { shown++ },
		OnToggle:      func() { toggled++ },
		OnReset:       func() { reset++ },
		OnMode:        func(mode timekeeper.Mode) { modes = append(modes, mode) },
		OnPreferences: func() { prefs++ },
		OnQuit:        func() { quit++ },
	})

	for _, item := range manager.menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}

	assert.Equal(t, 1, toggled)
	assert.Equal(t, 1, reset)
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, prefs)
	assert.Equal(t, 1, quit)
	assert.Equal(t, []timekeeper.Mode{timekeeper.ModeTimer, timekeeper.ModeStopwatch}, modes)
}

func TestManager_NilApp(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.Render(timekeeper.Snapshot{Mode: timekeeper.ModeStopwatch})
	assert.Equal(t, "Stopwatch: 00:00:00 (paused)", manager.statusItem.Label)
}
