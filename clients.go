package alto

import (
	"fmt"
	"path/filepath"
	"runtime"
)

/*
Client handles for producing log records.

A LogClient is a thin per-target handle over the process-wide handler: it
stamps every message with its target path and forwards the record through
Dispatch. Clients carry no synchronization of their own - the filter side
is pure and the output side is serialized by the handler - so a client may
be shared freely between goroutines.

For a simple single-part program one client is enough; larger programs
create one per module with the module path as the target:

	var log = alto.NewClient("my_module::inner")

Records produced before Init installs a handler are silently discarded.
*/

// LogClient represents a producer of log records for one target. Clients
// are lightweight and intended to be created by NewClient.
type LogClient struct {
	target   string
	curLevel Level // current level used by Write / fmt.Fprintf helpers
	caller   bool  // whether to capture source file/line per record
}

// NewClient constructs a client handle that emits records under the given
// target/module path.
func NewClient(target string) *LogClient {
	return &LogClient{target: target, curLevel: LVL_INFO}
}

// WithCaller enables source-location capture: every record gets the file
// base name and line of the logging call. Returns the same client for
// convenient chaining.
func (lc *LogClient) WithCaller() *LogClient {
	lc.caller = true
	return lc
}

// Target returns the target path this client stamps on its records.
func (lc *LogClient) Target() string {
	return lc.target
}

// Log emits a textual message at the provided level.
func (lc *LogClient) Log(level Level, s string) {
	lc.emit(level, s, 2)
}

// Logf emits a fmt.Sprintf-formatted message at the provided level. The
// formatting cost is paid even for filtered-out records; prefer guarding
// hot paths with the level helpers when that matters.
func (lc *LogClient) Logf(level Level, format string, args ...any) {
	lc.emit(level, fmt.Sprintf(format, args...), 2)
}

// emit builds the record (optionally with the caller's source location,
// skip frames up from emit itself) and hands it to the dispatcher.
func (lc *LogClient) emit(level Level, s string, skip int) {
	rec := Record{
		Level:   normLevel(level),
		Target:  lc.target,
		Message: s,
	}
	if lc.caller {
		if _, file, line, ok := runtime.Caller(skip); ok {
			rec.File = filepath.Base(file)
			rec.Line = line
		}
	}
	Dispatch(&rec)
}

// Convenience level-specific helpers for common log levels.
// These are thin wrappers around Log that provide inline hints in
// editors and documentation tools.

// LogTrace emits a textual message at TRACE level.
//
// Use this for very verbose diagnostic information.
func (lc *LogClient) LogTrace(s string) {
	lc.emit(LVL_TRACE, s, 2)
}

// LogDebug emits a textual message at DEBUG level.
//
// Intended for developer-focused debugging output.
func (lc *LogClient) LogDebug(s string) {
	lc.emit(LVL_DEBUG, s, 2)
}

// LogInfo emits an informational message at INFO level.
//
// Use for normal operational messages.
func (lc *LogClient) LogInfo(s string) {
	lc.emit(LVL_INFO, s, 2)
}

// LogWarn emits a warning message at WARN level.
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (lc *LogClient) LogWarn(s string) {
	lc.emit(LVL_WARN, s, 2)
}

// LogError emits an arbitrary textual message at ERROR level.
//
// Use this when you have a formatted or constructed string that represents
// an error condition. Use
//
//	LogErr(e error)
//
// to log an error value instead of a string.
func (lc *LogClient) LogError(s string) {
	lc.emit(LVL_ERROR, s, 2)
}

// LogErr emits an error value at ERROR level.
//
// Semantically equivalent to LogError(e.Error()) but clearer at call sites
// when you already have an error object.
func (lc *LogClient) LogErr(e error) {
	lc.emit(LVL_ERROR, e.Error(), 2)
}
