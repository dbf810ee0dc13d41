package preferences

import (
	"simpletimer/internal/core/model"
)

const (
	MinVolume = -3.0
	MaxVolume = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultMode string

	SoundEnabled        bool
	Volume              float64
	SystemNotification  bool
	FlashOnComplete     bool
	NotificationMessage string

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for SimpleTimer.
func DefaultSettings() Settings {
	return Settings{
		DefaultMode:         "timer",
		SoundEnabled:        true,
		Volume:              0,
		SystemNotification:  true,
		FlashOnComplete:     true,
		NotificationMessage: "Timer done!",
		WindowWidth:         460,
		WindowHeight:        300,
	}
}

// KeeperConfig converts settings to the TimeKeeper configuration.
func (settings Settings) KeeperConfig() model.KeeperConfig {
	return model.KeeperConfig{
		DefaultMode: settings.DefaultMode,
	}
}
