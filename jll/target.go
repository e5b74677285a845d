package jll

import "fmt"

// LogTarget is the destination formatted lines are written to.
type LogTarget int

const (
	// TargetConsole writes lines to standard output.
	TargetConsole LogTarget = iota
	// TargetFile appends lines to the configured log file.
	TargetFile
)

// String returns the wire name of the target.
func (t LogTarget) String() string {
	switch t {
	case TargetConsole:
		return "CONSOLE"
	case TargetFile:
		return "FILE"
	}
	return fmt.Sprintf("LogTarget(%d)", int(t))
}

// ParseLogTarget parses a target by its exact, case-sensitive wire name.
func ParseLogTarget(s string) (LogTarget, error) {
	switch s {
	case "CONSOLE":
		return TargetConsole, nil
	case "FILE":
		return TargetFile, nil
	}
	return 0, &InvalidEnumError{Kind: "log target", Value: s}
}
