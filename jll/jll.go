// Package jll is a small message logger. It formats a message with an
// optional timestamp, application name and delimiter, filters it by a
// three-tier log level and writes it to the console or an append-only
// log file. Its settings can be snapshotted in memory and persisted to
// a JSON file.
//
// The package-level functions are a convenience facade over one shared
// Logger, Settings and Utils triple, constructed lazily on first use.
// Callers who prefer explicit wiring can build their own instances with
// NewSettings, NewUtils and NewLogger instead.
package jll

import "sync"

var (
	setupOnce   sync.Once
	stdLogger   *Logger
	stdSettings *Settings
	stdUtils    *Utils
)

// Setup constructs the shared logger, settings and utils instances. It
// is called automatically by the accessors and the convenience logging
// functions; calling it again has no effect. Safe for concurrent first
// use from multiple goroutines.
func Setup() {
	setupOnce.Do(func() {
		stdSettings = NewSettings()
		stdUtils = NewUtils(stdSettings)
		stdLogger = NewLogger(stdSettings, stdUtils)
	})
}

// GetLogger returns the shared Logger.
func GetLogger() *Logger {
	Setup()
	return stdLogger
}

// GetSettings returns the shared Settings store.
func GetSettings() *Settings {
	Setup()
	return stdSettings
}

// GetUtils returns the shared Utils.
func GetUtils() *Utils {
	Setup()
	return stdUtils
}

// Log writes the message through the shared logger at level MEDIUM.
func Log(message string) {
	GetLogger().Log(message)
}

// LogAt writes the message through the shared logger at the given level.
func LogAt(message string, level LogLevel) {
	GetLogger().LogAt(message, level)
}
