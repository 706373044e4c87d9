package alto

// never use fmt in render paths - fragments are appended to the buffer directly

import (
	"bytes"
	"strconv"
)

/*
Layout engines. Both renderers append a record's full textual form into a
caller-owned bytes.Buffer; the owning handler then flushes the buffer with
one Write call so concurrent records can never interleave.

Single-line layout:

	0001.234567890s INFO  [my::module] message text

Multi-line (block) layout:

	INFO  0001.234567890s
	  ⤷ my::module
	  message text
	  at main.go:42

A blank line terminates each block to aid human scanning.
*/

const _BLOCK_INDENT = "  "
const _BLOCK_CONTINUATION = "⤷"

// renderRecord builds the textual form of a record according to the options
// and appends it to outBuffer. Colors are emitted only when colored is true
// and the relevant fragment is non-empty; every colored piece is closed
// with a reset so a record can never leak style past its own bytes.
func renderRecord(outBuffer *bytes.Buffer, rec *Record, opts *Options, colored bool) {
	if rec == nil {
		return
	}
	if opts.Style == STYLE_SINGLE_LINE {
		renderLine(outBuffer, rec, opts, colored)
	} else {
		renderBlock(outBuffer, rec, opts, colored)
	}
}

// renderLine writes the compact single-line layout: optional timestamp,
// level indicator, [target], message, newline. The color reset of the last
// fragment lands before the newline.
func renderLine(outBuffer *bytes.Buffer, rec *Record, opts *Options, colored bool) {
	color := opts.Color
	if stamp, ok := opts.Time.stamp(); ok {
		writeColored(outBuffer, color.Timestamp, stamp, colored)
		outBuffer.WriteByte(' ')
	}
	writeColored(outBuffer, color.level(rec.Level), paddedLevel(rec.Level), colored)
	outBuffer.WriteString(" [")
	writeColored(outBuffer, color.Target, rec.Target, colored)
	outBuffer.WriteString("] ")
	writeColored(outBuffer, color.Message, rec.Message, colored)
	outBuffer.WriteByte('\n')
}

// renderBlock writes the multi-line layout: a header line with the colored
// level and optional timestamp, then indented body lines for the target,
// the verbatim message (never truncated) and the optional source location,
// finished by a blank separator line.
func renderBlock(outBuffer *bytes.Buffer, rec *Record, opts *Options, colored bool) {
	color := opts.Color
	writeColored(outBuffer, color.level(rec.Level), paddedLevel(rec.Level), colored)
	if stamp, ok := opts.Time.stamp(); ok {
		outBuffer.WriteByte(' ')
		writeColored(outBuffer, color.Timestamp, stamp, colored)
	}
	outBuffer.WriteByte('\n')
	outBuffer.WriteString(_BLOCK_INDENT)
	writeColored(outBuffer, color.Continuation, _BLOCK_CONTINUATION, colored)
	outBuffer.WriteByte(' ')
	writeColored(outBuffer, color.Target, rec.Target, colored)
	outBuffer.WriteByte('\n')
	outBuffer.WriteString(_BLOCK_INDENT)
	writeColored(outBuffer, color.Message, rec.Message, colored)
	outBuffer.WriteByte('\n')
	if rec.File != "" {
		outBuffer.WriteString(_BLOCK_INDENT)
		outBuffer.WriteString("at ")
		outBuffer.WriteString(rec.File)
		outBuffer.WriteByte(':')
		outBuffer.WriteString(strconv.Itoa(rec.Line))
		outBuffer.WriteByte('\n')
	}
	outBuffer.WriteByte('\n')
}

// writeColored appends one fragment-wrapped piece of text, or the bare text
// when styling is off or the fragment is empty.
func writeColored(outBuffer *bytes.Buffer, fragment, text string, colored bool) {
	if !colored || fragment == "" {
		outBuffer.WriteString(text)
		return
	}
	outBuffer.WriteString(ANSI_COL_PRFX)
	outBuffer.WriteString(fragment)
	outBuffer.WriteString(ANSI_COL_SUFX)
	outBuffer.WriteString(text)
	outBuffer.WriteString(ANSI_COL_RESET)
}

// paddedLevel returns the level name right-padded to the widest name so
// fields after the level line up across records.
func paddedLevel(level Level) string {
	const width = 5 // len("ERROR") == len("TRACE") == len("DEBUG")
	name := LevelFullNames[normLevel(level)]
	for len(name) < width {
		name += " "
	}
	return name
}
