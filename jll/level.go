package jll

import "fmt"

// LogLevel is the severity tier of a message.
type LogLevel int

const (
	// LevelLow is the lowest severity tier.
	LevelLow LogLevel = iota
	// LevelMedium is the middle severity tier and the default for messages
	// logged without an explicit level.
	LevelMedium
	// LevelHigh is the highest severity tier.
	LevelHigh
)

// String returns the wire name of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelLow:
		return "LOW"
	case LevelMedium:
		return "MEDIUM"
	case LevelHigh:
		return "HIGH"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel parses a level by its exact, case-sensitive wire name.
func ParseLogLevel(s string) (LogLevel, error) {
	switch s {
	case "LOW":
		return LevelLow, nil
	case "MEDIUM":
		return LevelMedium, nil
	case "HIGH":
		return LevelHigh, nil
	}
	return 0, &InvalidEnumError{Kind: "log level", Value: s}
}
