package jll

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// settingsDocument is the on-disk shape: the twelve settings fields
// wrapped in a single top-level jll_settings object, enums by name.
type settingsDocument struct {
	Settings settingsFields `json:"jll_settings"`
}

type settingsFields struct {
	LoggingEnabled       bool   `json:"loggingEnabled"`
	LogLevel             string `json:"logLevel"`
	AllowSubLogLevels    bool   `json:"allowSubLogLevels"`
	LogTarget            string `json:"logTarget"`
	LogFile              string `json:"logFile"`
	PrintDate            bool   `json:"printDate"`
	DateFormat           string `json:"dateFormat"`
	PrintTime            bool   `json:"printTime"`
	TimeFormat           string `json:"timeFormat"`
	Delimiter            string `json:"delimiter"`
	ApplicationName      string `json:"applicationName"`
	PrintApplicationName bool   `json:"printApplicationName"`
}

// patchFields mirrors settingsFields with every field optional, so a
// partial document only names the fields it wants to change. Unknown
// keys are ignored by the decoder.
type patchFields struct {
	LoggingEnabled       *bool   `json:"loggingEnabled"`
	LogLevel             *string `json:"logLevel"`
	AllowSubLogLevels    *bool   `json:"allowSubLogLevels"`
	LogTarget            *string `json:"logTarget"`
	LogFile              *string `json:"logFile"`
	PrintDate            *bool   `json:"printDate"`
	DateFormat           *string `json:"dateFormat"`
	PrintTime            *bool   `json:"printTime"`
	TimeFormat           *string `json:"timeFormat"`
	Delimiter            *string `json:"delimiter"`
	ApplicationName      *string `json:"applicationName"`
	PrintApplicationName *bool   `json:"printApplicationName"`
}

// ConfigPatch is a validated partial settings update as read from a
// settings file. Nil fields were absent and leave the current value
// untouched when applied.
type ConfigPatch struct {
	LoggingEnabled       *bool
	LogLevel             *LogLevel
	AllowSubLogLevels    *bool
	LogTarget            *LogTarget
	LogFile              *string
	PrintDate            *bool
	DateFormat           *LogDateFormat
	PrintTime            *bool
	TimeFormat           *LogDateFormat
	Delimiter            *string
	ApplicationName      *string
	PrintApplicationName *bool
}

// SaveConfig writes the full configuration to path as pretty-printed
// JSON, overwriting any previous file. The log file path is serialized
// as an empty string when none is set.
func SaveConfig(path string, cfg Config) error {
	doc := settingsDocument{Settings: settingsFields{
		LoggingEnabled:       cfg.LoggingEnabled,
		LogLevel:             cfg.LogLevel.String(),
		AllowSubLogLevels:    cfg.AllowSubLogLevels,
		LogTarget:            cfg.LogTarget.String(),
		LogFile:              cfg.LogFile,
		PrintDate:            cfg.PrintDate,
		DateFormat:           cfg.DateFormat.String(),
		PrintTime:            cfg.PrintTime,
		TimeFormat:           cfg.TimeFormat.String(),
		Delimiter:            cfg.Delimiter,
		ApplicationName:      cfg.ApplicationName,
		PrintApplicationName: cfg.PrintApplicationName,
	}}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads a settings file and turns it into a validated patch.
// The file may use JSON5 relaxations (comments, trailing commas); strict
// JSON as written by SaveConfig always parses. Enum names are matched
// exactly and case-sensitively; a value that matches no defined constant
// fails the whole load with an InvalidEnumError and nothing is applied.
func LoadConfig(path string) (ConfigPatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ConfigPatch{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var doc struct {
		Settings patchFields `json:"jll_settings"`
	}
	if err := json5.Unmarshal(data, &doc); err != nil {
		return ConfigPatch{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	raw := doc.Settings
	patch := ConfigPatch{
		LoggingEnabled:       raw.LoggingEnabled,
		AllowSubLogLevels:    raw.AllowSubLogLevels,
		LogFile:              raw.LogFile,
		PrintDate:            raw.PrintDate,
		PrintTime:            raw.PrintTime,
		Delimiter:            raw.Delimiter,
		ApplicationName:      raw.ApplicationName,
		PrintApplicationName: raw.PrintApplicationName,
	}
	if raw.LogLevel != nil {
		level, err := ParseLogLevel(*raw.LogLevel)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("settings file %s: %w", path, err)
		}
		patch.LogLevel = &level
	}
	if raw.LogTarget != nil {
		target, err := ParseLogTarget(*raw.LogTarget)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("settings file %s: %w", path, err)
		}
		patch.LogTarget = &target
	}
	if raw.DateFormat != nil {
		format, err := ParseLogDateFormat(*raw.DateFormat)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("settings file %s: %w", path, err)
		}
		patch.DateFormat = &format
	}
	if raw.TimeFormat != nil {
		format, err := ParseLogDateFormat(*raw.TimeFormat)
		if err != nil {
			return ConfigPatch{}, fmt.Errorf("settings file %s: %w", path, err)
		}
		patch.TimeFormat = &format
	}
	return patch, nil
}

// Apply updates the fields present in the patch, in the on-disk field
// order, as one atomic configuration swap. An empty log file path in the
// patch is a no-op, matching SetLogFile.
func (s *Settings) Apply(patch ConfigPatch) {
	s.update(func(c *Config) {
		if patch.LoggingEnabled != nil {
			c.LoggingEnabled = *patch.LoggingEnabled
		}
		if patch.LogLevel != nil {
			c.LogLevel = *patch.LogLevel
		}
		if patch.AllowSubLogLevels != nil {
			c.AllowSubLogLevels = *patch.AllowSubLogLevels
		}
		if patch.LogTarget != nil {
			c.LogTarget = *patch.LogTarget
		}
		if patch.LogFile != nil && *patch.LogFile != "" {
			c.LogFile = *patch.LogFile
		}
		if patch.PrintDate != nil {
			c.PrintDate = *patch.PrintDate
		}
		if patch.DateFormat != nil {
			c.DateFormat = *patch.DateFormat
		}
		if patch.PrintTime != nil {
			c.PrintTime = *patch.PrintTime
		}
		if patch.TimeFormat != nil {
			c.TimeFormat = *patch.TimeFormat
		}
		if patch.Delimiter != nil {
			c.Delimiter = *patch.Delimiter
		}
		if patch.ApplicationName != nil {
			c.ApplicationName = *patch.ApplicationName
		}
		if patch.PrintApplicationName != nil {
			c.PrintApplicationName = *patch.PrintApplicationName
		}
	})
}
