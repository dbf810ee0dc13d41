package timekeeper

import "time"

// Mode selects between counting down and counting up.
type Mode string

const (
	ModeTimer     Mode = "timer"
	ModeStopwatch Mode = "stopwatch"
)

// Valid reports whether mode is a known mode.
func (mode Mode) Valid() bool {
	return mode == ModeTimer || mode == ModeStopwatch
}

// RunState tells whether the tick driver is advancing the counter.
type RunState string

const (
	RunStatePaused  RunState = "paused"
	RunStateRunning RunState = "running"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventInput       EventType = "input"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
