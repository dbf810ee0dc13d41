package model

import "time"

// Preset is a countdown length loaded before the widget is shown.
type Preset struct {
	Hours   int
	Minutes int
	Seconds int
}

// KeeperConfig contains runtime settings for the TimeKeeper state machine.
type KeeperConfig struct {
	// DefaultMode is "timer" or "stopwatch". Anything else falls back to timer.
	DefaultMode string
	Preset      Preset

	TickInterval time.Duration
}
