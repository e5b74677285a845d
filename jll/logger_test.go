package jll

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingReporter captures internal error reports for assertions.
type recordingReporter struct {
	reports []string
}

func (r *recordingReporter) Report(details string) {
	r.reports = append(r.reports, details)
}

func newTestLogger() (*Logger, *Settings, *bytes.Buffer, *recordingReporter) {
	settings := NewSettings()
	utils := NewUtils(settings)
	reporter := &recordingReporter{}
	utils.SetErrorReporter(reporter)

	logger := NewLogger(settings, utils)
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	logger.now = func() time.Time { return formatRef }
	return logger, settings, buf, reporter
}

func TestLogToConsole(t *testing.T) {
	logger, settings, buf, _ := newTestLogger()
	settings.SetPrintDate(false)
	settings.SetPrintTime(false)

	logger.Log("Hello")
	assert.Equal(t, "JLogLib ==> Hello\n", buf.String())
}

func TestLogDisabled(t *testing.T) {
	logger, settings, buf, _ := newTestLogger()
	settings.SetLoggingEnabled(false)

	logger.Log("Hello")
	assert.Empty(t, buf.String())
}

func TestLogFiltered(t *testing.T) {
	logger, settings, buf, _ := newTestLogger()
	settings.SetLogLevel(LevelLow)
	settings.SetAllowSubLogLevels(true)

	// LOW admits only LOW, regardless of allowSubLogLevels.
	logger.LogAt("too high", LevelHigh)
	assert.Empty(t, buf.String())

	logger.LogAt("just right", LevelLow)
	assert.Contains(t, buf.String(), "just right")
}

func TestLogToFileAppends(t *testing.T) {
	logger, settings, buf, reporter := newTestLogger()
	path := filepath.Join(t.TempDir(), "app.log")
	settings.SetPrintDate(false)
	settings.SetPrintTime(false)
	settings.SetLogTarget(TargetFile)
	settings.SetLogFile(path)

	logger.Log("first")
	logger.Log("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "JLogLib ==> first\nJLogLib ==> second\n", string(data))
	assert.Empty(t, buf.String(), "file target must not write to the console")
	assert.Empty(t, reporter.reports)
}

func TestLogToFileFailureIsReported(t *testing.T) {
	logger, settings, buf, reporter := newTestLogger()
	// A directory path cannot be opened as a regular file.
	settings.SetLogTarget(TargetFile)
	settings.SetLogFile(t.TempDir())

	logger.Log("Hello")

	require.Len(t, reporter.reports, 1)
	assert.Contains(t, reporter.reports[0], "Possible Reasons")
	assert.Empty(t, buf.String())
}

func TestConsoleReporterOutput(t *testing.T) {
	settings := NewSettings()
	settings.SetPrintDate(false)
	settings.SetPrintTime(false)
	// A broken configuration must not suppress the report.
	settings.SetLoggingEnabled(false)
	settings.SetPrintApplicationName(false)
	settings.SetLogTarget(TargetFile)
	settings.SetLogFile("/nonexistent/dir/app.log")
	before := settings.Config()

	buf := &bytes.Buffer{}
	reporter := newConsoleReporter(settings, buf)
	reporter.Report("line one\nline two")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "JLogLib Error Reporter ==> An internal error occurred!")
	assert.Equal(t, "JLogLib Error Reporter ==> line one", lines[1])
	assert.Equal(t, "JLogLib Error Reporter ==> line two", lines[2])

	// Reporting must leave the live settings untouched.
	assert.Equal(t, before, settings.Config())
}
