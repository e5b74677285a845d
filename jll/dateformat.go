package jll

import "fmt"

// LogDateFormat selects how verbose the date and time segments of a line
// are rendered. The same three styles apply to both segments, each
// configured independently.
type LogDateFormat int

const (
	// FormatShort renders the most compact style, e.g. "1/2/06" or "3:04 PM".
	FormatShort LogDateFormat = iota
	// FormatMedium renders the default style, e.g. "Jan 2, 2006" or "3:04:05 PM".
	FormatMedium
	// FormatLong renders the most verbose style, e.g. "January 2, 2006" or
	// "3:04:05 PM MST".
	FormatLong
)

// String returns the wire name of the format.
func (f LogDateFormat) String() string {
	switch f {
	case FormatShort:
		return "SHORT"
	case FormatMedium:
		return "MEDIUM"
	case FormatLong:
		return "LONG"
	}
	return fmt.Sprintf("LogDateFormat(%d)", int(f))
}

// ParseLogDateFormat parses a format by its exact, case-sensitive wire name.
func ParseLogDateFormat(s string) (LogDateFormat, error) {
	switch s {
	case "SHORT":
		return FormatShort, nil
	case "MEDIUM":
		return FormatMedium, nil
	case "LONG":
		return FormatLong, nil
	}
	return 0, &InvalidEnumError{Kind: "date format", Value: s}
}
