package jll

func dateLayout(f LogDateFormat) string {
	switch f {
	case FormatShort:
		return "1/2/06"
	case FormatLong:
		return "January 2, 2006"
	default:
		return "Jan 2, 2006"
	}
}

func timeLayout(f LogDateFormat) string {
	switch f {
	case FormatShort:
		return "3:04 PM"
	case FormatLong:
		return "3:04:05 PM MST"
	default:
		return "3:04:05 PM"
	}
}

// TimestampLayout builds the time layout for one log line from the
// date/time flags and styles of cfg. When both segments are printed the
// date comes first, separated by a single space. ok is false when
// neither segment is printed, meaning the line carries no timestamp.
func TimestampLayout(cfg Config) (layout string, ok bool) {
	switch {
	case cfg.PrintDate && cfg.PrintTime:
		return dateLayout(cfg.DateFormat) + " " + timeLayout(cfg.TimeFormat), true
	case cfg.PrintDate:
		return dateLayout(cfg.DateFormat), true
	case cfg.PrintTime:
		return timeLayout(cfg.TimeFormat), true
	}
	return "", false
}
