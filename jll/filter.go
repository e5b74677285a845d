package jll

// ShouldLog reports whether a message at messageLevel passes the filter
// for the given configured level. Levels are ordered LOW < MEDIUM < HIGH.
// The rule is per configured level, not a generalized comparison:
//
//	LOW:    only LOW messages, allowSubLevels has no effect.
//	MEDIUM: MEDIUM messages, plus LOW when sub-levels are allowed.
//	HIGH:   HIGH messages, plus every level when sub-levels are allowed.
//
// Note the asymmetry: HIGH with sub-levels allowed admits all three
// levels, not only those below HIGH.
func ShouldLog(currentLevel LogLevel, allowSubLevels bool, messageLevel LogLevel) bool {
	switch currentLevel {
	case LevelLow:
		return messageLevel == LevelLow
	case LevelMedium:
		return messageLevel == LevelMedium || (allowSubLevels && messageLevel == LevelLow)
	case LevelHigh:
		return messageLevel == LevelHigh || allowSubLevels
	}
	return false
}
