// Package config provides configuration management for the xpres CLI.
package config

import (
	"time"

	"github.com/leapstack-labs/xpres/internal/cli/output"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose       bool             `koanf:"verbose"`
	LogLevel      string           `koanf:"log_level"`
	Output        output.Format    `koanf:"output"`
	Color         output.ColorMode `koanf:"color"`
	WatchDebounce time.Duration    `koanf:"watch_debounce"`
	HistoryFile   string           `koanf:"history_file"`
	CheckJobs     int              `koanf:"check_jobs"`
}

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultOutput        = output.FormatAuto
	DefaultColor         = output.ColorAuto
	DefaultWatchDebounce = 100 * time.Millisecond
	DefaultHistoryFile   = ".xpres_history"
)

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		Output:        DefaultOutput,
		Color:         DefaultColor,
		WatchDebounce: DefaultWatchDebounce,
		HistoryFile:   DefaultHistoryFile,
	}
}
