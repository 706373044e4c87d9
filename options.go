package alto

/*
Configuration bundle shared by all handlers:
  - StyleConfig picks the single-line or multi-line layout (see common.go)
  - ColorConfig maps levels and layout fields to ANSI SGR fragments
  - TimeConfig selects how (and whether) a timestamp is rendered

All of it is set before Init and immutable afterwards.
*/

import (
	"strconv"
	"sync"
	"time"
)

// Options is the configuration bundle accepted by handler constructors.
// The zero value means: multi-line layout, default colors, no timestamp.
type Options struct {
	Style StyleConfig
	Color *ColorConfig // nil selects DefaultColors()
	Time  *TimeConfig  // nil selects TimeNone()
}

// WithStyle returns a copy of the options using the provided layout style.
func (o Options) WithStyle(style StyleConfig) Options {
	o.Style = normStyle(style)
	return o
}

// WithColor returns a copy of the options using the provided color policy.
func (o Options) WithColor(color *ColorConfig) Options {
	o.Color = color
	return o
}

// WithTime returns a copy of the options using the provided time config.
func (o Options) WithTime(tc *TimeConfig) Options {
	o.Time = tc
	return o
}

// withDefaults fills nil members so renderers never have to re-check.
func (o Options) withDefaults() Options {
	o.Style = normStyle(o.Style)
	if o.Color == nil {
		o.Color = DefaultColors()
	}
	if o.Time == nil {
		o.Time = TimeNone()
	}
	return o
}

/////////////////////////////////////////////////////////////////////////////////////////

// ColorConfig maps each level and each layout field to an ANSI SGR fragment
// (the text between ANSI_COL_PRFX and ANSI_COL_SUFX). An empty fragment
// means the piece is written unstyled. The mapping is total: every level
// has exactly one entry in Levels.
type ColorConfig struct {
	Levels       *LevelMap // per-level fragment for the level indicator
	Timestamp    string    // fragment for the timestamp field
	Target       string    // fragment for the target/module path
	Continuation string    // fragment for the block-layout continuation mark
	Message      string    // fragment for the message text
}

// DefaultColors returns the full default palette: bold red errors down to
// dim traces, muted 256-color shades for the non-level fields.
func DefaultColors() *ColorConfig {
	return &ColorConfig{
		Levels:       LevelColorDefaults,
		Timestamp:    "38;5;243",
		Target:       "38;5;131",
		Continuation: "38;5;237",
		Message:      "38;5;231",
	}
}

// OnlyLevelColors keeps the default per-level colors and leaves every other
// field unstyled.
func OnlyLevelColors() *ColorConfig {
	return &ColorConfig{Levels: LevelColorDefaults}
}

// MonochromeColors disables styling entirely (the "colors: Disabled"
// configuration). Renderers emit no escape sequences at all with it.
func MonochromeColors() *ColorConfig {
	return &ColorConfig{Levels: &LevelMap{}}
}

// level returns the fragment for a level, tolerating a nil Levels map.
func (c *ColorConfig) level(l Level) string {
	if c.Levels == nil {
		return ""
	}
	return c.Levels[normLevel(l)]
}

/////////////////////////////////////////////////////////////////////////////////////////

type timeMode basetype

const (
	// Timestamp rendering modes.
	_TIME_NONE timeMode = iota
	_TIME_UNIX
	_TIME_RELATIVE
	_TIME_TIMING
	_TIME_DATETIME
	_TIME_MAX_for_checks_only
)

// TimeConfig selects how the optional timestamp field is produced. The
// renderer only ever asks it for "current wall-clock text", so layouts stay
// agnostic to which mode (if any) is active.
type TimeConfig struct {
	mode   timeMode
	layout string           // time.Format layout for _TIME_DATETIME
	start  time.Time        // reference point for _TIME_RELATIVE
	now    func() time.Time // injectable clock, time.Now outside tests
	mu     sync.Mutex       // guards last for _TIME_TIMING
	last   time.Time        // previous record's instant (_TIME_TIMING)
}

// TimeNone disables the timestamp field (the default).
func TimeNone() *TimeConfig {
	return &TimeConfig{mode: _TIME_NONE, now: time.Now}
}

// TimeUnix renders whole seconds since the Unix epoch.
func TimeUnix() *TimeConfig {
	return &TimeConfig{mode: _TIME_UNIX, now: time.Now}
}

// TimeRelative renders fractional seconds elapsed since the config was
// created (i.e. since logger setup).
func TimeRelative() *TimeConfig {
	return &TimeConfig{mode: _TIME_RELATIVE, start: time.Now(), now: time.Now}
}

// TimeTiming renders fractional seconds elapsed since the previous record,
// starting from zero. Needs internal locking since consecutive records race
// for the "previous" slot.
func TimeTiming() *TimeConfig {
	return &TimeConfig{mode: _TIME_TIMING, now: time.Now}
}

// TimeDateTime renders the current wall-clock time with the provided
// time.Format layout, e.g. "2006-01-02 15:04:05".
//
// More about layouts at https://pkg.go.dev/time#Layout
func TimeDateTime(layout string) *TimeConfig {
	return &TimeConfig{mode: _TIME_DATETIME, layout: layout, now: time.Now}
}

// stamp returns the timestamp text for the next record and whether the
// field is present at all.
func (tc *TimeConfig) stamp() (string, bool) {
	switch tc.mode {
	case _TIME_UNIX:
		return pad4(tc.now().Unix()) + "s", true
	case _TIME_RELATIVE:
		return elapsedStr(tc.now().Sub(tc.start)), true
	case _TIME_TIMING:
		tc.mu.Lock()
		defer tc.mu.Unlock()
		t := tc.now()
		var d time.Duration
		if !tc.last.IsZero() {
			d = t.Sub(tc.last)
		}
		tc.last = t
		return elapsedStr(d), true
	case _TIME_DATETIME:
		return tc.now().Format(tc.layout), true
	default:
		return "", false
	}
}

// elapsedStr formats a duration as zero-padded "ssss.nnnnnnnnns".
func elapsedStr(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)
	ns := strconv.FormatInt(nanos, 10)
	for len(ns) < 9 {
		ns = "0" + ns
	}
	return pad4(secs) + "." + ns + "s"
}

// pad4 renders an integer zero-padded to at least four digits.
func pad4(v int64) string {
	s := strconv.FormatInt(v, 10)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
