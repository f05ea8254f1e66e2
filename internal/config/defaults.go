package config

import (
	_ "embed"
)

//go:embed defaults/colorgame.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded default settings.
func DefaultSettings() Settings {
	return Settings{
		Color:       ModeAuto,
		ClearScreen: ModeAuto,
		LogLevel:    "warn",
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
