package alto

/*
Defines the core data types used across the package:
  - basetype and a small set of typed aliases for clarity
  - Level: the severity enumeration with its total order and name tables
  - LevelMap: fixed per-level arrays used for names and colors
  - Record: the unit of work handed to a handler
  - package-wide constants (defaults, ANSI fragments) and normalization
    helpers
*/

import "strings"

type basetype byte // basetype is the underlying byte-sized representation used for enums

type Level basetype       // Log severity (alias for byte), ordered most-severe-first
type StyleConfig basetype // Line-breaking style selector (single- or multi-line)

const (
	// Severity values. Error is the most severe and has the lowest ordinal,
	// so "at least as severe as X" is `level <= X`. The trailing
	// _LVL_MAX_for_checks_only is used as an exclusive upper bound for
	// normalization checks.
	LVL_ERROR Level = iota
	LVL_WARN
	LVL_INFO
	LVL_DEBUG
	LVL_TRACE
	_LVL_MAX_for_checks_only
)

const (
	// Layout styles for rendered records. The zero value is the multi-line
	// block layout.
	STYLE_MULTI_LINE StyleConfig = iota
	STYLE_SINGLE_LINE
	_STYLE_MAX_for_checks_only
)

const (
	// Default values for short init forms
	DEFAULT_FILTER_LEVEL = LVL_INFO // default level when the filter spec has no bare level clause
	DEFAULT_OUT_BUFF     = 256      // initial buffer size for rendered output text
	FILTER_ENV_VAR       = "GO_LOG" // environment variable holding the filter specification
	NO_COLOR_ENV_VAR     = "NO_COLOR"
)

const (
	// ANSI colored text fragments prefix/suffix used when colors are requested.
	// For a colored piece of text the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

// LevelMap is a fixed-size array with one entry per log level. Used for
// level names and colors.
type LevelMap [_LVL_MAX_for_checks_only]string

// Record is the unit delivered by the logging facade for every log call.
// It is ephemeral: handlers consume it synchronously and never retain it.
type Record struct {
	Level   Level
	Target  string // hierarchical module/component path, the filter match key
	Message string
	File    string // optional source file (base name); empty if not captured
	Line    int    // optional source line; meaningful only with File set
}

/////////////////////////////////////////////////////////////////////////////////////////

// Predefined log level full names map (used by renderers and String())
var LevelFullNames = &LevelMap{
	"ERROR", //LVL_ERROR
	"WARN",  //LVL_WARN
	"INFO",  //LVL_INFO
	"DEBUG", //LVL_DEBUG
	"TRACE", //LVL_TRACE
}

// Predefined log level short names map (for compact custom layouts)
var LevelShortNames = &LevelMap{
	"ERR", //LVL_ERROR
	"WRN", //LVL_WARN
	"INF", //LVL_INFO
	"DBG", //LVL_DEBUG
	"TRC", //LVL_TRACE
}

// Predefined color map for ANSI terminal (SGR fragments, one per level)
var LevelColorDefaults = &LevelMap{
	"1;31", //LVL_ERROR bold red
	"0;33", //LVL_WARN  yellow
	"0;32", //LVL_INFO  green
	"0;34", //LVL_DEBUG blue
	"2;37", //LVL_TRACE dim white
}

// String returns the level's canonical upper-case name.
func (l Level) String() string {
	return LevelFullNames[normLevel(l)]
}

// ParseLevel matches a level name case-insensitively against the Level
// enumeration. The second result is false for unrecognized names.
func ParseLevel(name string) (Level, bool) {
	for l := LVL_ERROR; l < _LVL_MAX_for_checks_only; l++ {
		if strings.EqualFold(name, LevelFullNames[l]) {
			return l, true
		}
	}
	return LVL_ERROR, false
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided Level is within the valid range
func normLevel(level Level) Level {
	return norm_byte(level, _LVL_MAX_for_checks_only, LVL_ERROR)
}

// Ensures a provided StyleConfig is within the valid range
func normStyle(style StyleConfig) StyleConfig {
	return norm_byte(style, _STYLE_MAX_for_checks_only, STYLE_MULTI_LINE)
}
