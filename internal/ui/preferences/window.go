package preferences

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var modeOptions = []string{"timer", "stopwatch"}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	mode       *widget.Select
	sound      *widget.Check
	volume     *widget.Slider
	system     *widget.Check
	flash      *widget.Check
	message    *widget.Entry
	saveButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("SimpleTimer Settings")

	mode := widget.NewSelect(modeOptions, nil)
	sound := widget.NewCheck("Play a chime", nil)
	volume := widget.NewSlider(MinVolume, MaxVolume)
	volume.Step = 0.25
	system := widget.NewCheck("Desktop notification", nil)
	flash := widget.NewCheck("Flash the clock", nil)
	message := widget.NewEntry()
	message.SetPlaceHolder("Timer done!")

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Start in"), mode, widget.NewLabel("mode")),
		widget.NewLabelWithStyle("When a countdown finishes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		system,
		flash,
		sound,
		widget.NewLabel("Chime volume"),
		volume,
		widget.NewLabel("Message"),
		message,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 420))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		mode:       mode,
		sound:      sound,
		volume:     volume,
		system:     system,
		flash:      flash,
		message:    message,
		saveButton: saveButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.mode.SetSelected(normalizeMode(settings.DefaultMode))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(clampVolume(settings.Volume))
	prefs.system.SetChecked(settings.SystemNotification)
	prefs.flash.SetChecked(settings.FlashOnComplete)
	prefs.message.SetText(settings.NotificationMessage)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.DefaultMode = normalizeMode(prefs.mode.Selected)
	settings.SoundEnabled = prefs.sound.Checked
	settings.Volume = clampVolume(prefs.volume.Value)
	settings.SystemNotification = prefs.system.Checked
	settings.FlashOnComplete = prefs.flash.Checked
	if message := strings.TrimSpace(prefs.message.Text); message != "" {
		settings.NotificationMessage = message
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func normalizeMode(mode string) string {
	for _, option := range modeOptions {
		if mode == option {
			return mode
		}
	}
	return modeOptions[0]
}

func clampVolume(volume float64) float64 {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}
