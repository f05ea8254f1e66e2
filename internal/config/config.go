// Package config provides YAML-based settings loading for the color game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Mode controls an optional terminal feature.
type Mode string

const (
	ModeAuto   Mode = "auto"   // Enabled only when stdout is a terminal
	ModeAlways Mode = "always" // Always enabled
	ModeNever  Mode = "never"  // Always disabled
)

// ParseMode converts a string to a Mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (want auto, always or never)", ErrInvalidSettings, s)
	}
}

// Enabled resolves the mode against whether output is a terminal.
func (m Mode) Enabled(isTerminal bool) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal
	}
}

// Settings contains all user-adjustable game settings.
type Settings struct {
	Catalog     string `yaml:"catalog"`      // Path to a custom catalog file; empty = built-in
	Color       Mode   `yaml:"color"`        // Colored output
	ClearScreen Mode   `yaml:"clear_screen"` // Clear the screen between sections
	Seed        int64  `yaml:"seed"`         // RNG seed; 0 = time-based
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	LogFile     string `yaml:"log_file"`     // Empty = stderr
}

// Validate normalizes modes and checks the log level.
func (s *Settings) Validate() error {
	var err error
	if s.Color, err = ParseMode(string(s.Color)); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if s.ClearScreen, err = ParseMode(string(s.ClearScreen)); err != nil {
		return fmt.Errorf("clear_screen: %w", err)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. Empty means warn.
func (s *Settings) Level() (log.Level, error) {
	if s.LogLevel == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("%w: log_level: %v", ErrInvalidSettings, err)
	}
	return lvl, nil
}
