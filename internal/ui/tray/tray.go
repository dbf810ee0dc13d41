package tray

import (
	"fmt"

	"simpletimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

// MenuSetter installs the tray menu. desktop.App satisfies it.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnMode        func(timekeeper.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Manager mirrors the widget state in the system tray.
type Manager struct {
	app           MenuSetter
	callbacks     Callbacks
	statusItem    *fyne.MenuItem
	toggleItem    *fyne.MenuItem
	resetItem     *fyne.MenuItem
	timerItem     *fyne.MenuItem
	stopwatchItem *fyne.MenuItem
	menu          *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: 00:00:00", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.timerItem = fyne.NewMenuItem("Timer", func() {
		manager.selectMode(timekeeper.ModeTimer)
	})
	manager.stopwatchItem = fyne.NewMenuItem("Stopwatch", func() {
		manager.selectMode(timekeeper.ModeStopwatch)
	})

	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("SimpleTimer",
		manager.statusItem,
		show,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.timerItem,
		manager.stopwatchItem,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	)
	manager.refreshMenu()

	return manager
}

// Render updates every tray item from snapshot.
func (manager *Manager) Render(snapshot timekeeper.Snapshot) {
	status := snapshot.Display()
	if !snapshot.Running() {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("%s: %s", modeTitle(snapshot.Mode), status)

	manager.toggleItem.Label = snapshot.ToggleLabel()
	manager.toggleItem.Disabled = !snapshot.StartEnabled()
	manager.timerItem.Checked = snapshot.Mode == timekeeper.ModeTimer
	manager.stopwatchItem.Checked = snapshot.Mode == timekeeper.ModeStopwatch
	manager.refreshMenu()
}

func (manager *Manager) selectMode(mode timekeeper.Mode) {
	if manager.callbacks.OnMode != nil {
		manager.callbacks.OnMode(mode)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}

func modeTitle(mode timekeeper.Mode) string {
	if mode == timekeeper.ModeStopwatch {
		return "Stopwatch"
	}
	return "Timer"
}
