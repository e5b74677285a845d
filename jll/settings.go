package jll

import (
	"sync"
	"sync/atomic"
)

// Config is one complete, immutable view of the library settings. A log
// call reads exactly one Config, so a line is never assembled from a
// half-updated configuration.
type Config struct {
	LoggingEnabled       bool
	LogLevel             LogLevel
	AllowSubLogLevels    bool
	LogTarget            LogTarget
	LogFile              string
	PrintDate            bool
	DateFormat           LogDateFormat
	PrintTime            bool
	TimeFormat           LogDateFormat
	Delimiter            string
	ApplicationName      string
	PrintApplicationName bool
}

// DefaultConfig returns the configuration every Settings store starts
// with: logging enabled at MEDIUM with sub-levels allowed, console
// target, date and time printed in MEDIUM style, delimiter "==>" and
// application name "JLogLib" printed on every line.
func DefaultConfig() Config {
	return Config{
		LoggingEnabled:       true,
		LogLevel:             LevelMedium,
		AllowSubLogLevels:    true,
		LogTarget:            TargetConsole,
		PrintDate:            true,
		DateFormat:           FormatMedium,
		PrintTime:            true,
		TimeFormat:           FormatMedium,
		Delimiter:            "==>",
		ApplicationName:      "JLogLib",
		PrintApplicationName: true,
	}
}

// EffectiveTarget resolves the target lines are actually written to:
// FILE only when a log file is configured, CONSOLE otherwise. The stored
// target is left as-is, so setting a file later makes it effective again.
func (c Config) EffectiveTarget() LogTarget {
	if c.LogFile == "" {
		return TargetConsole
	}
	return c.LogTarget
}

// Settings holds the live configuration plus at most one snapshot.
// Readers take one atomic load per operation; setters copy-on-write under
// a mutex so concurrent single-field updates are not lost.
type Settings struct {
	mu       sync.Mutex
	current  atomic.Pointer[Config]
	snapshot atomic.Pointer[Config]
}

// NewSettings creates a store initialized with DefaultConfig.
func NewSettings() *Settings {
	s := &Settings{}
	cfg := DefaultConfig()
	s.current.Store(&cfg)
	return s
}

// Config returns the current configuration as one consistent value.
func (s *Settings) Config() Config {
	return *s.current.Load()
}

func (s *Settings) update(mutate func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := *s.current.Load()
	mutate(&cfg)
	s.current.Store(&cfg)
}

// IsLoggingEnabled reports whether logging is enabled at all.
func (s *Settings) IsLoggingEnabled() bool {
	return s.Config().LoggingEnabled
}

// SetLoggingEnabled switches logging on or off globally.
func (s *Settings) SetLoggingEnabled(enabled bool) {
	s.update(func(c *Config) { c.LoggingEnabled = enabled })
}

// LogLevel returns the configured level threshold.
func (s *Settings) LogLevel() LogLevel {
	return s.Config().LogLevel
}

// SetLogLevel sets the level threshold messages are filtered against.
func (s *Settings) SetLogLevel(level LogLevel) {
	s.update(func(c *Config) { c.LogLevel = level })
}

// AllowsSubLogLevels reports whether messages below the configured level
// may pass the filter.
func (s *Settings) AllowsSubLogLevels() bool {
	return s.Config().AllowSubLogLevels
}

// SetAllowSubLogLevels controls whether messages below the configured
// level may pass the filter.
func (s *Settings) SetAllowSubLogLevels(allow bool) {
	s.update(func(c *Config) { c.AllowSubLogLevels = allow })
}

// LogTarget returns the effective target: CONSOLE whenever no log file is
// set, regardless of the stored value.
func (s *Settings) LogTarget() LogTarget {
	return s.Config().EffectiveTarget()
}

// SetLogTarget sets the stored target. It only becomes effective as FILE
// once a log file is configured too.
func (s *Settings) SetLogTarget(target LogTarget) {
	s.update(func(c *Config) { c.LogTarget = target })
}

// LogFile returns the configured log file path, or "" when none is set.
func (s *Settings) LogFile() string {
	return s.Config().LogFile
}

// SetLogFile stores the path of the log file. An empty path is a no-op
// and leaves any configured file untouched.
func (s *Settings) SetLogFile(path string) {
	if path == "" {
		return
	}
	s.update(func(c *Config) { c.LogFile = path })
}

// PrintsDate reports whether lines start with a date segment.
func (s *Settings) PrintsDate() bool {
	return s.Config().PrintDate
}

// SetPrintDate controls the date segment of the timestamp.
func (s *Settings) SetPrintDate(print bool) {
	s.update(func(c *Config) { c.PrintDate = print })
}

// DateFormat returns the style of the date segment.
func (s *Settings) DateFormat() LogDateFormat {
	return s.Config().DateFormat
}

// SetDateFormat sets the style of the date segment.
func (s *Settings) SetDateFormat(format LogDateFormat) {
	s.update(func(c *Config) { c.DateFormat = format })
}

// PrintsTime reports whether lines carry a time segment.
func (s *Settings) PrintsTime() bool {
	return s.Config().PrintTime
}

// SetPrintTime controls the time segment of the timestamp.
func (s *Settings) SetPrintTime(print bool) {
	s.update(func(c *Config) { c.PrintTime = print })
}

// TimeFormat returns the style of the time segment.
func (s *Settings) TimeFormat() LogDateFormat {
	return s.Config().TimeFormat
}

// SetTimeFormat sets the style of the time segment.
func (s *Settings) SetTimeFormat(format LogDateFormat) {
	s.update(func(c *Config) { c.TimeFormat = format })
}

// Delimiter returns the separator between line segments.
func (s *Settings) Delimiter() string {
	return s.Config().Delimiter
}

// SetDelimiter sets the separator between line segments.
func (s *Settings) SetDelimiter(delimiter string) {
	s.update(func(c *Config) { c.Delimiter = delimiter })
}

// ApplicationName returns the name printed on lines when enabled.
func (s *Settings) ApplicationName() string {
	return s.Config().ApplicationName
}

// SetApplicationName sets the name printed on lines when enabled.
func (s *Settings) SetApplicationName(name string) {
	s.update(func(c *Config) { c.ApplicationName = name })
}

// PrintsApplicationName reports whether lines carry the application name.
func (s *Settings) PrintsApplicationName() bool {
	return s.Config().PrintApplicationName
}

// SetPrintApplicationName controls whether lines carry the application name.
func (s *Settings) SetPrintApplicationName(print bool) {
	s.update(func(c *Config) { c.PrintApplicationName = print })
}

// Reset restores every field to its default value. A snapshot, if any,
// is kept and can still be restored afterwards.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := DefaultConfig()
	s.current.Store(&cfg)
}

// CreateSnapshot saves a value copy of the current configuration,
// replacing any previous snapshot. Later mutations of the live settings
// do not affect the snapshot.
func (s *Settings) CreateSnapshot() {
	cfg := s.Config()
	s.snapshot.Store(&cfg)
}

// RestoreFromSnapshot replaces the live configuration with the last
// snapshot. Without a snapshot it does nothing. The snapshot survives
// the restore and can be applied again.
func (s *Settings) RestoreFromSnapshot() {
	snap := s.snapshot.Load()
	if snap == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := *snap
	s.current.Store(&cfg)
}
