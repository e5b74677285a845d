package jll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldLog(t *testing.T) {
	tests := []struct {
		current  LogLevel
		allowSub bool
		message  LogLevel
		want     bool
	}{
		{LevelLow, false, LevelLow, true},
		{LevelLow, false, LevelMedium, false},
		{LevelLow, false, LevelHigh, false},
		{LevelLow, true, LevelLow, true},
		{LevelLow, true, LevelMedium, false},
		{LevelLow, true, LevelHigh, false},

		{LevelMedium, false, LevelLow, false},
		{LevelMedium, false, LevelMedium, true},
		{LevelMedium, false, LevelHigh, false},
		{LevelMedium, true, LevelLow, true},
		{LevelMedium, true, LevelMedium, true},
		{LevelMedium, true, LevelHigh, false},

		{LevelHigh, false, LevelLow, false},
		{LevelHigh, false, LevelMedium, false},
		{LevelHigh, false, LevelHigh, true},
		// HIGH with sub-levels allowed admits every level.
		{LevelHigh, true, LevelLow, true},
		{LevelHigh, true, LevelMedium, true},
		{LevelHigh, true, LevelHigh, true},
	}

	for _, tt := range tests {
		got := ShouldLog(tt.current, tt.allowSub, tt.message)
		assert.Equalf(t, tt.want, got, "ShouldLog(%s, %v, %s)", tt.current, tt.allowSub, tt.message)
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("HIGH")
	assert.NoError(t, err)
	assert.Equal(t, LevelHigh, level)

	// Matching is exact and case-sensitive.
	for _, name := range []string{"high", "High", "VERBOSE", ""} {
		_, err := ParseLogLevel(name)
		var enumErr *InvalidEnumError
		assert.ErrorAsf(t, err, &enumErr, "ParseLogLevel(%q)", name)
	}
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "LOW", LevelLow.String())
	assert.Equal(t, "MEDIUM", LevelMedium.String())
	assert.Equal(t, "HIGH", LevelHigh.String())
	assert.Equal(t, "CONSOLE", TargetConsole.String())
	assert.Equal(t, "FILE", TargetFile.String())
	assert.Equal(t, "SHORT", FormatShort.String())
	assert.Equal(t, "MEDIUM", FormatMedium.String())
	assert.Equal(t, "LONG", FormatLong.String())
}
