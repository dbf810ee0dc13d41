package animation

import "time"

// DefaultConfig returns the flash used when a countdown finishes.
func DefaultConfig() Config {
	return Config{
		Flashes:     3,
		OnDuration:  300 * time.Millisecond,
		OffDuration: 200 * time.Millisecond,
	}
}
