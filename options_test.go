package alto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Options_Builders(t *testing.T) {
	tc := TimeUnix()
	cc := OnlyLevelColors()
	opts := Options{}.WithStyle(STYLE_SINGLE_LINE).WithColor(cc).WithTime(tc)
	assert.Equal(t, STYLE_SINGLE_LINE, opts.Style)
	assert.Same(t, cc, opts.Color)
	assert.Same(t, tc, opts.Time)
}

func Test_Options_Defaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, STYLE_MULTI_LINE, opts.Style, "multi-line is the default layout")
	assert.NotNil(t, opts.Color)
	assert.NotNil(t, opts.Time)
	_, present := opts.Time.stamp()
	assert.False(t, present, "no timestamp by default")
}

func Test_Options_NormalizesStyle(t *testing.T) {
	opts := Options{Style: StyleConfig(250)}.withDefaults()
	assert.Equal(t, STYLE_MULTI_LINE, opts.Style)
}

func Test_ColorConfig_Presets(t *testing.T) {
	t.Run("default_total", func(t *testing.T) {
		cc := DefaultColors()
		for l := LVL_ERROR; l < _LVL_MAX_for_checks_only; l++ {
			assert.NotEmpty(t, cc.level(l), "every level must have a style")
		}
		assert.NotEmpty(t, cc.Timestamp)
		assert.NotEmpty(t, cc.Target)
	})
	t.Run("adjacent_levels_distinguishable", func(t *testing.T) {
		cc := DefaultColors()
		for l := LVL_ERROR; l < _LVL_MAX_for_checks_only-1; l++ {
			assert.NotEqual(t, cc.level(l), cc.level(l+1))
		}
	})
	t.Run("only_levels", func(t *testing.T) {
		cc := OnlyLevelColors()
		assert.Equal(t, LevelColorDefaults, cc.Levels)
		assert.Empty(t, cc.Timestamp)
		assert.Empty(t, cc.Target)
		assert.Empty(t, cc.Continuation)
		assert.Empty(t, cc.Message)
	})
	t.Run("monochrome", func(t *testing.T) {
		cc := MonochromeColors()
		for l := LVL_ERROR; l < _LVL_MAX_for_checks_only; l++ {
			assert.Empty(t, cc.level(l))
		}
	})
}

func Test_TimeConfig_None(t *testing.T) {
	tc := TimeNone()
	stamp, present := tc.stamp()
	assert.False(t, present)
	assert.Empty(t, stamp)
}

func Test_TimeConfig_Unix(t *testing.T) {
	tc := TimeUnix()
	tc.now = func() time.Time { return time.Unix(42, 999) }
	stamp, present := tc.stamp()
	assert.True(t, present)
	assert.Equal(t, "0042s", stamp, "whole seconds, zero-padded")
}

func Test_TimeConfig_Relative(t *testing.T) {
	base := time.Unix(1000, 0)
	tc := TimeRelative()
	tc.start = base
	tc.now = func() time.Time { return base.Add(2*time.Second + 250*time.Millisecond) }
	stamp, present := tc.stamp()
	assert.True(t, present)
	assert.Equal(t, "0002.250000000s", stamp)
}

func Test_TimeConfig_Timing(t *testing.T) {
	base := time.Unix(1000, 0)
	instants := []time.Time{base, base.Add(1500 * time.Millisecond), base.Add(1600 * time.Millisecond)}
	next := 0
	tc := TimeTiming()
	tc.now = func() time.Time { t := instants[next]; next++; return t }

	stamp, present := tc.stamp()
	assert.True(t, present)
	assert.Equal(t, "0000.000000000s", stamp, "first record has no predecessor")

	stamp, _ = tc.stamp()
	assert.Equal(t, "0001.500000000s", stamp)

	stamp, _ = tc.stamp()
	assert.Equal(t, "0000.100000000s", stamp, "delta is against the previous record, not the start")
}

func Test_TimeConfig_DateTime(t *testing.T) {
	tc := TimeDateTime("2006-01-02 15:04:05")
	tc.now = func() time.Time { return time.Date(2020, 4, 21, 7, 30, 9, 0, time.UTC) }
	stamp, present := tc.stamp()
	assert.True(t, present)
	assert.Equal(t, "2020-04-21 07:30:09", stamp)
}
