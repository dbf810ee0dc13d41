package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"simpletimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DefaultMode         string   `yaml:"default_mode"`
	SoundEnabled        *bool    `yaml:"sound_enabled"`
	Volume              *float64 `yaml:"volume"`
	SystemNotification  *bool    `yaml:"system_notification"`
	FlashOnComplete     *bool    `yaml:"flash_on_complete"`
	NotificationMessage string   `yaml:"notification_message"`
	WindowWidth         float32  `yaml:"window_width"`
	WindowHeight        float32  `yaml:"window_height"`
}

// SettingsPath returns the settings file location for appName under configDir.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DefaultMode:         settings.DefaultMode,
		SoundEnabled:        &settings.SoundEnabled,
		Volume:              &settings.Volume,
		SystemNotification:  &settings.SystemNotification,
		FlashOnComplete:     &settings.FlashOnComplete,
		NotificationMessage: settings.NotificationMessage,
		WindowWidth:         settings.WindowWidth,
		WindowHeight:        settings.WindowHeight,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.DefaultMode == "timer" || fileData.DefaultMode == "stopwatch" {
		settings.DefaultMode = fileData.DefaultMode
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.Volume != nil && *fileData.Volume >= preferences.MinVolume && *fileData.Volume <= preferences.MaxVolume {
		settings.Volume = *fileData.Volume
	}
	if fileData.SystemNotification != nil {
		settings.SystemNotification = *fileData.SystemNotification
	}
	if fileData.FlashOnComplete != nil {
		settings.FlashOnComplete = *fileData.FlashOnComplete
	}
	if fileData.NotificationMessage != "" {
		settings.NotificationMessage = fileData.NotificationMessage
	}
	if fileData.WindowWidth >= 200 && fileData.WindowHeight >= 150 {
		settings.WindowWidth = fileData.WindowWidth
		settings.WindowHeight = fileData.WindowHeight
	}
}
