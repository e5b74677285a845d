package jll

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Logger is the single write path of the library: it filters a message,
// assembles one formatted line and hands it to the effective target.
type Logger struct {
	settings *Settings
	utils    *Utils
	out      io.Writer
	now      func() time.Time
}

// NewLogger creates a logger over the given settings store. Utils
// supplies the internal error path for failed file writes. Console
// output goes to standard output unless redirected with SetOutput.
func NewLogger(settings *Settings, utils *Utils) *Logger {
	return &Logger{
		settings: settings,
		utils:    utils,
		out:      os.Stdout,
		now:      time.Now,
	}
}

// SetOutput redirects console output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log writes the message at level MEDIUM.
func (l *Logger) Log(message string) {
	l.LogAt(message, LevelMedium)
}

// LogAt writes the message at the given level. The call is a no-op when
// logging is disabled or the level filter rejects the message. A failed
// file write is not returned to the caller; it is reported through the
// internal error path.
func (l *Logger) LogAt(message string, level LogLevel) {
	cfg := l.settings.Config()
	if !cfg.LoggingEnabled || !ShouldLog(cfg.LogLevel, cfg.AllowSubLogLevels, level) {
		return
	}

	line := formatLine(cfg, l.now(), message)
	if cfg.EffectiveTarget() == TargetFile {
		if err := appendLine(cfg.LogFile, line); err != nil {
			l.utils.reportWriteFailure(cfg.LogFile, err)
		}
		return
	}
	fmt.Fprintln(l.out, line)
}

// formatLine assembles one output line. With a timestamp the order is
// timestamp, optional application name, message, each separated by the
// delimiter. Without one the optional application name prefixes the
// message directly.
func formatLine(cfg Config, now time.Time, message string) string {
	var b strings.Builder
	if layout, ok := TimestampLayout(cfg); ok {
		b.WriteString(now.Format(layout))
		if cfg.PrintApplicationName {
			b.WriteString(" " + cfg.Delimiter + " " + cfg.ApplicationName)
		}
		b.WriteString(" " + cfg.Delimiter + " " + message)
	} else {
		if cfg.PrintApplicationName {
			b.WriteString(cfg.ApplicationName + " " + cfg.Delimiter + " ")
		}
		b.WriteString(message)
	}
	return b.String()
}

// appendLine opens the log file for appending, writes one line and
// closes the file again. No handle is kept between calls.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write log file %s: %w", path, err)
	}
	return f.Close()
}
