package clock

import (
	"context"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"time"

	"simpletimer/internal/core/timekeeper"
	"simpletimer/internal/notify"
	"simpletimer/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Controller is the part of the TimeKeeper the window drives.
type Controller interface {
	Snapshot() timekeeper.Snapshot
	Toggle() bool
	Reset()
	SetMode(mode timekeeper.Mode) error
	SetHours(hours int) bool
	SetMinutes(minutes int) bool
	SetSeconds(seconds int) bool
}

// Config defines window visuals.
type Config struct {
	Title           string
	Width           float32
	Height          float32
	FlashOnComplete bool
	BannerDuration  time.Duration
}

var (
	pausedColor    = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	runningColor   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	highlightColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

const (
	modeLabelTimer     = "Timer"
	modeLabelStopwatch = "Stopwatch"
)

// Window is the timer/stopwatch widget.
type Window struct {
	window       fyne.Window
	keeper       Controller
	modeSelect   *widget.Select
	toggleButton *widget.Button
	resetButton  *widget.Button
	hours        *widget.Entry
	minutes      *widget.Entry
	seconds      *widget.Entry
	inputRow     *fyne.Container
	display      *canvas.Text
	banner       *widget.Label
	engine       *animation.Engine

	mu          sync.Mutex
	flash       bool
	bannerFor   time.Duration
	bannerTimer *time.Timer
	highlight   bool
	rendering   bool
}

// New creates the widget window bound to keeper.
func New(app fyne.App, keeper Controller, config Config) *Window {
	if config.Title == "" {
		config.Title = "Simple Timer"
	}
	if config.BannerDuration <= 0 {
		config.BannerDuration = 4 * time.Second
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clock := &Window{
		window:    window,
		keeper:    keeper,
		flash:     config.FlashOnComplete,
		bannerFor: config.BannerDuration,
	}

	clock.modeSelect = widget.NewSelect([]string{modeLabelTimer, modeLabelStopwatch}, clock.handleMode)
	clock.toggleButton = widget.NewButton("Start", clock.handleToggle)
	clock.toggleButton.Importance = widget.HighImportance
	clock.resetButton = widget.NewButton("Reset", clock.handleReset)

	clock.hours = newFieldEntry()
	clock.minutes = newFieldEntry()
	clock.seconds = newFieldEntry()
	clock.hours.OnChanged = clock.handleField(clock.hours, keeper.SetHours)
	clock.minutes.OnChanged = clock.handleField(clock.minutes, keeper.SetMinutes)
	clock.seconds.OnChanged = clock.handleField(clock.seconds, keeper.SetSeconds)

	clock.display = canvas.NewText(timekeeper.FormatClock(0), pausedColor)
	clock.display.Alignment = fyne.TextAlignCenter
	clock.display.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.display.TextSize = 56

	clock.banner = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	clock.banner.Hide()

	clock.engine = animation.New(animation.DefaultConfig(), func(on bool) {
		fyne.Do(func() {
			clock.setHighlight(on)
		})
	})

	controls := container.NewGridWithColumns(3, clock.modeSelect, clock.toggleButton, clock.resetButton)
	clock.inputRow = container.NewGridWithColumns(3,
		labeled("Hours", clock.hours),
		labeled("Minutes", clock.minutes),
		labeled("Seconds", clock.seconds),
	)
	content := container.NewVBox(
		controls,
		clock.inputRow,
		layout.NewSpacer(),
		clock.display,
		clock.banner,
	)

	window.SetContent(container.NewPadded(content))
	if config.Width > 0 && config.Height > 0 {
		window.Resize(fyne.NewSize(config.Width, config.Height))
	}

	clock.Refresh()
	return clock
}

// Show displays the window.
func (clock *Window) Show() {
	clock.window.Show()
	clock.window.RequestFocus()
}

// SetOnClosed registers the teardown hook run when the window closes.
func (clock *Window) SetOnClosed(handler func()) {
	clock.window.SetOnClosed(func() {
		clock.engine.Stop()
		if handler != nil {
			handler()
		}
	})
}

// SetMaster makes closing this window quit the app.
func (clock *Window) SetMaster() {
	clock.window.SetMaster()
}

// SetFlashOnComplete toggles the completion flash.
func (clock *Window) SetFlashOnComplete(enabled bool) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.flash = enabled
}

// Refresh re-renders from the keeper's current state. Call on the UI goroutine.
func (clock *Window) Refresh() {
	clock.Render(clock.keeper.Snapshot())
}

// Render applies snapshot to every widget. Enabled state is derived each time.
func (clock *Window) Render(snapshot timekeeper.Snapshot) {
	clock.rendering = true
	defer func() { clock.rendering = false }()

	clock.display.Text = snapshot.Display()
	clock.display.Color = clock.displayColor(snapshot)
	clock.display.Refresh()

	clock.toggleButton.SetText(snapshot.ToggleLabel())
	setEnabled(clock.toggleButton, snapshot.StartEnabled())

	if label := modeLabel(snapshot.Mode); clock.modeSelect.Selected != label {
		clock.modeSelect.SetSelected(label)
	}

	syncField(clock.hours, snapshot.Input.Hours)
	syncField(clock.minutes, snapshot.Input.Minutes)
	syncField(clock.seconds, snapshot.Input.Seconds)
	for _, entry := range []*widget.Entry{clock.hours, clock.minutes, clock.seconds} {
		setEnabled(entry, snapshot.InputsEditable())
	}

	if snapshot.Mode == timekeeper.ModeTimer {
		clock.inputRow.Show()
	} else {
		clock.inputRow.Hide()
	}
}

// Watch re-renders on every keeper event until events is closed.
func (clock *Window) Watch(events <-chan timekeeper.Event) {
	for range events {
		fyne.Do(clock.Refresh)
	}
}

// Notify implements notify.Sink with an in-window banner and a flash.
func (clock *Window) Notify(notice notify.Notice) error {
	fyne.Do(func() {
		clock.showNotice(notice)
	})
	return nil
}

func (clock *Window) showNotice(notice notify.Notice) {
	clock.banner.SetText(notice.Message)
	clock.banner.Show()

	clock.mu.Lock()
	if clock.bannerTimer != nil {
		clock.bannerTimer.Stop()
	}
	clock.bannerTimer = time.AfterFunc(clock.bannerFor, func() {
		fyne.Do(clock.banner.Hide)
	})
	flash := clock.flash
	clock.mu.Unlock()

	if flash {
		clock.engine.Flash(context.Background())
	}
}

func (clock *Window) setHighlight(on bool) {
	clock.highlight = on
	clock.Refresh()
}

func (clock *Window) displayColor(snapshot timekeeper.Snapshot) color.Color {
	if clock.highlight {
		return highlightColor
	}
	if snapshot.Running() {
		return runningColor
	}
	return pausedColor
}

func (clock *Window) handleToggle() {
	clock.keeper.Toggle()
	clock.Refresh()
}

func (clock *Window) handleReset() {
	clock.keeper.Reset()
	clock.Refresh()
}

func (clock *Window) handleMode(label string) {
	if clock.rendering {
		return
	}
	_ = clock.keeper.SetMode(modeFromLabel(label))
	clock.Refresh()
}

func (clock *Window) handleField(entry *widget.Entry, set func(int) bool) func(string) {
	return func(text string) {
		if clock.rendering {
			return
		}
		value := timekeeper.ParseField(text)
		set(value)

		normalized := strconv.Itoa(value)
		if strings.TrimSpace(text) != "" && text != normalized {
			clock.rendering = true
			entry.SetText(normalized)
			clock.rendering = false
		}
		clock.Refresh()
	}
}

func newFieldEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText("0")
	return entry
}

func labeled(label string, entry *widget.Entry) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, entry)
}

// syncField rewrites entry only when it disagrees with value, so a blank field
// that reads as 0 stays blank while the user edits it.
func syncField(entry *widget.Entry, value int) {
	if timekeeper.ParseField(entry.Text) == value {
		return
	}
	entry.SetText(strconv.Itoa(value))
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(target disableable, enabled bool) {
	if enabled {
		target.Enable()
		return
	}
	target.Disable()
}

func modeLabel(mode timekeeper.Mode) string {
	if mode == timekeeper.ModeStopwatch {
		return modeLabelStopwatch
	}
	return modeLabelTimer
}

func modeFromLabel(label string) timekeeper.Mode {
	if label == modeLabelStopwatch {
		return timekeeper.ModeStopwatch
	}
	return timekeeper.ModeTimer
}
