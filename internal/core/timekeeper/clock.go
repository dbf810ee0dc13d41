package timekeeper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxFieldValue caps every input field. With all three fields at the cap the
// total is still below math.MaxInt32, so 32-bit builds never overflow.
const MaxFieldValue = 99999

// Duration is the user-entered countdown length.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds converts the duration to whole seconds.
func (duration Duration) TotalSeconds() int {
	return duration.Hours*3600 + duration.Minutes*60 + duration.Seconds
}

// Clamped returns a copy with every field inside [0, MaxFieldValue].
func (duration Duration) Clamped() Duration {
	return Duration{
		Hours:   clampField(duration.Hours),
		Minutes: clampField(duration.Minutes),
		Seconds: clampField(duration.Seconds),
	}
}

// IsZero reports whether no countdown length is set.
func (duration Duration) IsZero() bool {
	return duration.TotalSeconds() == 0
}

// ParseField converts entry text to a field value.
// Blank, non-numeric and negative text all read as 0. Large numbers clamp to
// MaxFieldValue even when they do not fit in an int.
func ParseField(text string) int {
	text = strings.TrimSpace(text)
	value, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
		return MaxFieldValue
	}
	if err != nil {
		return 0
	}
	return clampField(value)
}

// FormatClock renders seconds as HH:MM:SS. Hours keep growing past two digits.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

func clampField(value int) int {
	if value < 0 {
		return 0
	}
	if value > MaxFieldValue {
		return MaxFieldValue
	}
	return value
}

// Snapshot is a consistent copy of the keeper state.
type Snapshot struct {
	Mode     Mode
	RunState RunState
	Input    Duration
	Counter  int
}

// Total returns the configured countdown length in seconds.
func (snapshot Snapshot) Total() int {
	return snapshot.Input.TotalSeconds()
}

// Running reports whether the tick driver is active.
func (snapshot Snapshot) Running() bool {
	return snapshot.RunState == RunStateRunning
}

// Display returns the formatted counter.
func (snapshot Snapshot) Display() string {
	return FormatClock(snapshot.Counter)
}

// StartEnabled reports whether the Start/Pause control accepts presses.
func (snapshot Snapshot) StartEnabled() bool {
	return !(snapshot.Mode == ModeTimer && snapshot.Input.IsZero())
}

// InputsEditable reports whether duration fields accept edits.
func (snapshot Snapshot) InputsEditable() bool {
	return !snapshot.Running()
}

// ToggleLabel is the caption of the combined Start/Pause control.
func (snapshot Snapshot) ToggleLabel() string {
	if snapshot.Running() {
		return "Pause"
	}
	return "Start"
}
