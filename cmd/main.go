package main

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"simpletimer/internal/cli"
	"simpletimer/internal/core/timekeeper"
	"simpletimer/internal/logging"
	"simpletimer/internal/notify"
	"simpletimer/internal/platform"
	"simpletimer/internal/storage"
	"simpletimer/internal/ui/clock"
	"simpletimer/internal/ui/preferences"
	"simpletimer/internal/ui/tray"
	"simpletimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "SimpleTimer"

func main() {
	if err := cli.Execute(context.Background(), run); err != nil {
		log.Printf("simpletimer: %v", err)
		os.Exit(1)
	}
}

func run(_ context.Context, options cli.Options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, settingsPath := loadSettings(options.ConfigDir)
	var settingsMu sync.Mutex
	currentSettings := func() preferences.Settings {
		settingsMu.Lock()
		defer settingsMu.Unlock()
		return settings
	}

	keeperConfig := settings.KeeperConfig()
	if options.Mode != "" {
		keeperConfig.DefaultMode = options.Mode
	}
	keeperConfig.Preset = options.Preset
	keeperConfig.TickInterval = time.Second
	keeper := timekeeper.New(keeperConfig, timekeeper.Config{})
	defer keeper.Close()

	fyneApp := app.NewWithID("com.simpletimer.app")
	activeIcon := resources.MustIcon("timer.svg")
	pausedIcon := resources.MustIcon("timer_paused.svg")
	fyneApp.SetIcon(activeIcon)

	clockWindow := clock.New(fyneApp, keeper, clock.Config{
		Title:           "Simple Timer",
		Width:           settings.WindowWidth,
		Height:          settings.WindowHeight,
		FlashOnComplete: settings.FlashOnComplete,
	})
	clockWindow.SetMaster()
	clockWindow.SetOnClosed(keeper.Close)

	soundSink := notify.NewSoundSink(settings.Volume)
	systemSink := notify.NewSystemSink(fyneApp)
	notifier := notify.New(appName, settings.NotificationMessage, clockWindow)
	notifier.Add(notify.SinkFunc(func(notice notify.Notice) error {
		if !currentSettings().SystemNotification {
			return nil
		}
		return systemSink.Notify(notice)
	}))
	var soundDisabled atomic.Bool
	soundDisabled.Store(options.NoSound)
	notifier.Add(notify.SinkFunc(func(notice notify.Notice) error {
		if soundDisabled.Load() || !currentSettings().SoundEnabled {
			return nil
		}
		err := soundSink.Notify(notice)
		if errors.Is(err, notify.ErrAudioUnavailable) {
			if soundDisabled.CompareAndSwap(false, true) {
				log.Printf("sound disabled: %v", err)
			}
			return nil
		}
		return err
	}))

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settingsMu.Lock()
		settings = updated
		settingsMu.Unlock()

		notifier.SetMessage(updated.NotificationMessage)
		soundSink.SetVolume(updated.Volume)
		clockWindow.SetFlashOnComplete(updated.FlashOnComplete)
		if settingsPath == "" {
			return
		}
		if err := storage.SaveSettings(settingsPath, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: clockWindow.Show,
			OnToggle: func() {
				keeper.Toggle()
				clockWindow.Refresh()
			},
			OnReset: func() {
				keeper.Reset()
				clockWindow.Refresh()
			},
			OnMode: func(mode timekeeper.Mode) {
				if err := keeper.SetMode(mode); err != nil {
					log.Printf("tray: %v", err)
				}
				clockWindow.Refresh()
			},
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				keeper.Close()
				fyneApp.Quit()
			},
		})
		renderTray(desktopApp, trayManager, keeper.Snapshot(), activeIcon, pausedIcon)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	go clockWindow.Watch(keeper.Subscribe(16))
	go notifier.Watch(keeper.Subscribe(64))
	if hasTray {
		trayEvents := keeper.Subscribe(16)
		go func() {
			for event := range trayEvents {
				snapshot := event.Snapshot
				fyne.Do(func() {
					renderTray(desktopApp, trayManager, snapshot, activeIcon, pausedIcon)
				})
			}
		}()
	}
	go guard.Serve(func() {
		fyne.Do(clockWindow.Show)
	})

	clockWindow.Show()
	fyneApp.Run()
	return nil
}

func loadSettings(configDirOverride string) (preferences.Settings, string) {
	configDir, err := platform.ConfigDir(configDirOverride)
	if err != nil {
		log.Printf("settings: %v", err)
		return preferences.DefaultSettings(), ""
	}

	settingsPath := storage.SettingsPath(configDir, appName)
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	logging.Debugln("settings:", settingsPath)
	return settings, settingsPath
}

func renderTray(desktopApp desktop.App, manager *tray.Manager, snapshot timekeeper.Snapshot, activeIcon, pausedIcon fyne.Resource) {
	manager.Render(snapshot)
	if snapshot.Running() {
		desktopApp.SetSystemTrayIcon(activeIcon)
	} else {
		desktopApp.SetSystemTrayIcon(pausedIcon)
	}
}
