package alto

/*
Terminal handler. Writes colorized records to stderr (or any writer set
with SetOutput). Colors are emitted only when the sink is an interactive
terminal and the NO_COLOR environment variable is unset; otherwise plain
text is written.
*/

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// TermLogger renders enabled records to a terminal stream.
//
// The output stream is the only mutable shared state: the whole rendered
// form of one record is built into an internal buffer and flushed with a
// single Write while holding the stream mutex, so concurrent callers never
// interleave partial records and a color-set/reset pair is never split.
type TermLogger struct {
	opts    Options
	filters *DirectiveSet
	colored bool

	outsMtx sync.Mutex // guards out and msgbuf during a record flush
	out     io.Writer
	msgbuf  *bytes.Buffer // buffer reused while building formatted output
}

// NewTermLogger creates a terminal handler writing to os.Stderr with
// directives read from the GO_LOG environment variable. Configuration is
// meant to happen before the handler is installed with Init; the Set*
// chainable setters must not be called after that.
func NewTermLogger(opts Options) *TermLogger {
	t := &TermLogger{
		opts:    opts.withDefaults(),
		filters: DirectivesFromEnv(),
		msgbuf:  bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF)),
	}
	t.SetOutput(os.Stderr)
	return t
}

// SetOutput redirects the handler to another sink and re-detects whether
// colors may be emitted for it. Returns the same handler for chaining.
func (t *TermLogger) SetOutput(out io.Writer) *TermLogger {
	t.outsMtx.Lock()
	defer t.outsMtx.Unlock()
	if out == nil {
		out = io.Discard
	}
	t.out = out
	t.colored = colorsAllowed(out)
	return t
}

// SetDirectives replaces the directive set (instead of the GO_LOG one).
func (t *TermLogger) SetDirectives(ds *DirectiveSet) *TermLogger {
	if ds != nil {
		t.filters = ds
	}
	return t
}

// Colored reports whether the handler will emit ANSI sequences.
func (t *TermLogger) Colored() bool {
	return t.colored
}

// Enabled implements Handler by consulting the directive filter.
func (t *TermLogger) Enabled(target string, level Level) bool {
	return t.filters.Enabled(target, level)
}

// Handle implements Handler. It renders the record and writes it to the
// stream as one atomic write-sequence. Stream errors (broken pipe etc.) are
// swallowed and the record dropped: a logging subsystem must never be the
// reason the host fails, and the next record simply tries again.
func (t *TermLogger) Handle(rec *Record) {
	t.outsMtx.Lock()
	defer t.outsMtx.Unlock()
	t.msgbuf.Reset()
	renderRecord(t.msgbuf, rec, &t.opts, t.colored)
	_, _ = t.out.Write(t.msgbuf.Bytes())
}

// colorsAllowed queries the sink's terminal capability: escape sequences
// go out only to an interactive tty and only when NO_COLOR is unset.
func colorsAllowed(out io.Writer) bool {
	if _, nocolor := os.LookupEnv(NO_COLOR_ENV_VAR); nocolor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
