package jll

import (
	"fmt"
	"os"
)

// Utils bundles the helper operations of the library: the level check
// against the live settings, settings persistence and the internal error
// path. No failure of these operations ever reaches the caller; it is
// routed to the error reporter instead.
type Utils struct {
	settings *Settings
	reporter ErrorReporter
}

// NewUtils creates a Utils over the given settings store with a console
// fallback reporter.
func NewUtils(settings *Settings) *Utils {
	return &Utils{
		settings: settings,
		reporter: newConsoleReporter(settings, os.Stdout),
	}
}

// SetErrorReporter replaces the reporter used for internal failures.
// A nil reporter is ignored.
func (u *Utils) SetErrorReporter(r ErrorReporter) {
	if r != nil {
		u.reporter = r
	}
}

// CheckLogLevel reports whether a message at the given level passes the
// filter under the current settings.
func (u *Utils) CheckLogLevel(level LogLevel) bool {
	cfg := u.settings.Config()
	return ShouldLog(cfg.LogLevel, cfg.AllowSubLogLevels, level)
}

// TimestampLayout returns the time layout for the current settings, or
// ok=false when neither date nor time is printed.
func (u *Utils) TimestampLayout() (layout string, ok bool) {
	return TimestampLayout(u.settings.Config())
}

// SaveSettings writes the current settings to the given path. A failure
// is not returned; it is reported through the internal error path.
func (u *Utils) SaveSettings(path string) {
	if err := SaveConfig(path, u.settings.Config()); err != nil {
		u.reporter.Report(fmt.Sprintf(
			"The settings could not be saved to %q (%v).\n"+
				"Possible Reasons:\n"+
				"   - The settings file exists but is a directory rather than a regular file.\n"+
				"   - The settings file does not exist but cannot be created.\n"+
				"   - The settings file cannot be opened for any other reason.", path, err))
	}
}

// LoadSettings reads a settings file and applies the fields it names to
// the live settings. On any failure, including an unrecognized enum
// value, nothing is applied and the failure is reported through the
// internal error path.
func (u *Utils) LoadSettings(path string) {
	patch, err := LoadConfig(path)
	if err != nil {
		u.reporter.Report(fmt.Sprintf(
			"The settings could not be loaded from %q (%v).\n"+
				"Possible Reasons:\n"+
				"   - The settings file does not exist or cannot be read.\n"+
				"   - The settings file is not valid JSON.\n"+
				"   - The settings file contains an unrecognized enum value.", path, err))
		return
	}
	u.settings.Apply(patch)
}

// ResetSettings restores the default settings.
func (u *Utils) ResetSettings() {
	u.settings.Reset()
}

// PrintInternalError sends a diagnostic block through the error reporter.
func (u *Utils) PrintInternalError(details string) {
	u.reporter.Report(details)
}

func (u *Utils) reportWriteFailure(path string, err error) {
	u.reporter.Report(fmt.Sprintf(
		"The log file %q could not be written (%v).\n"+
			"Possible Reasons:\n"+
			"   - The log file exists but is a directory rather than a regular file.\n"+
			"   - The log file does not exist but cannot be created.\n"+
			"   - The log file cannot be opened for any other reason.", path, err))
}
