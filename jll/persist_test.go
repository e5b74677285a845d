package jll

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := NewSettings()
	s.SetLoggingEnabled(false)
	s.SetLogLevel(LevelHigh)
	s.SetAllowSubLogLevels(false)
	s.SetLogTarget(TargetFile)
	s.SetLogFile("app.log")
	s.SetPrintDate(false)
	s.SetDateFormat(FormatLong)
	s.SetTimeFormat(FormatShort)
	s.SetDelimiter("::")
	s.SetApplicationName("svc")
	s.SetPrintApplicationName(false)
	want := s.Config()

	require.NoError(t, SaveConfig(path, want))

	restored := NewSettings()
	patch, err := LoadConfig(path)
	require.NoError(t, err)
	restored.Apply(patch)

	assert.Equal(t, want, restored.Config())
}

func TestSaveWritesDocumentedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, SaveConfig(path, DefaultConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"jll_settings"`)
	assert.Contains(t, content, `"logLevel": "MEDIUM"`)
	assert.Contains(t, content, `"logTarget": "CONSOLE"`)
	assert.Contains(t, content, `"logFile": ""`)
	assert.Contains(t, content, `"delimiter": "==>"`)
	assert.Contains(t, content, `"applicationName": "JLogLib"`)
}

func TestPartialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jll_settings":{"delimiter":"::"}}`), 0644))

	s := NewSettings()
	patch, err := LoadConfig(path)
	require.NoError(t, err)
	s.Apply(patch)

	want := DefaultConfig()
	want.Delimiter = "::"
	assert.Equal(t, want, s.Config())
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"jll_settings":{"delimiter":"::","rotation":"daily"},"other":1}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	patch, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, patch.Delimiter)
	assert.Equal(t, "::", *patch.Delimiter)
}

func TestLoadAcceptsJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json5")
	doc := `{
	// comments and trailing commas are tolerated
	"jll_settings": {
		"logLevel": "HIGH",
		"delimiter": "::",
	},
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	patch, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, patch.LogLevel)
	assert.Equal(t, LevelHigh, *patch.LogLevel)
}

func TestLoadInvalidEnumFailsWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"jll_settings":{"delimiter":"::","logLevel":"VERBOSE"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := LoadConfig(path)
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "VERBOSE", enumErr.Value)
}

func TestUtilsLoadInvalidEnumLeavesSettingsUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"jll_settings":{"delimiter":"::","logLevel":"VERBOSE"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s := NewSettings()
	u := NewUtils(s)
	reporter := &recordingReporter{}
	u.SetErrorReporter(reporter)
	before := s.Config()

	u.LoadSettings(path)

	assert.Equal(t, before, s.Config(), "a failed load must not apply any field")
	require.Len(t, reporter.reports, 1)
	assert.Contains(t, reporter.reports[0], "VERBOSE")
}

func TestUtilsLoadMissingFileIsReported(t *testing.T) {
	s := NewSettings()
	u := NewUtils(s)
	reporter := &recordingReporter{}
	u.SetErrorReporter(reporter)

	u.LoadSettings(filepath.Join(t.TempDir(), "missing.json"))

	require.Len(t, reporter.reports, 1)
	assert.Contains(t, reporter.reports[0], "could not be loaded")
}

func TestUtilsSaveFailureIsReported(t *testing.T) {
	s := NewSettings()
	u := NewUtils(s)
	reporter := &recordingReporter{}
	u.SetErrorReporter(reporter)

	// Saving to a directory path must fail and be reported, not returned.
	u.SaveSettings(t.TempDir())

	require.Len(t, reporter.reports, 1)
	assert.Contains(t, reporter.reports[0], "could not be saved")
}

func TestUtilsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := NewSettings()
	u := NewUtils(s)
	reporter := &recordingReporter{}
	u.SetErrorReporter(reporter)

	s.SetDelimiter("::")
	s.SetLogLevel(LevelLow)
	u.SaveSettings(path)

	u.ResetSettings()
	assert.Equal(t, DefaultConfig(), s.Config())

	u.LoadSettings(path)
	assert.Equal(t, "::", s.Delimiter())
	assert.Equal(t, LevelLow, s.LogLevel())
	assert.Empty(t, reporter.reports)
}
