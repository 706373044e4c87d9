package alto

/*
File handler. Same layouts as the terminal handler but always plain text,
intended for *os.File sinks. Constructors cover the usual open modes plus a
timestamped-name variant that never clobbers an existing log.
*/

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// FileLogger renders enabled records, uncolored, to an io.Writer. Like
// TermLogger it flushes each record with a single Write under the stream
// mutex and swallows write errors.
type FileLogger struct {
	opts    Options
	filters *DirectiveSet
	path    string // set by the path-opening constructors, else empty

	outsMtx sync.Mutex
	out     io.Writer
	msgbuf  *bytes.Buffer
}

// NewFileLogger creates a file handler for an already-open writer with
// directives read from the GO_LOG environment variable.
func NewFileLogger(opts Options, out io.Writer) *FileLogger {
	if out == nil {
		out = io.Discard
	}
	return &FileLogger{
		opts:    opts.withDefaults(),
		filters: DirectivesFromEnv(),
		out:     out,
		msgbuf:  bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF)),
	}
}

// FileTruncate opens (or creates) the file at path, truncating previous
// content, and returns a handler writing to it.
func FileTruncate(opts Options, path string) (*FileLogger, error) {
	return openFileLogger(opts, path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// FileAppend opens (or creates) the file at path for appending and returns
// a handler writing to it.
func FileAppend(opts Options, path string) (*FileLogger, error) {
	return openFileLogger(opts, path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

// FileTimestamp creates a fresh log file with the current unix timestamp
// appended to the name and returns a handler writing to it:
//
//	out.log -> out_1587429534.log
//	out     -> out_1587429534
//
// The file must not already exist.
func FileTimestamp(opts Options, path string) (*FileLogger, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	return openFileLogger(opts, stem+"_"+stamp+ext, os.O_CREATE|os.O_WRONLY|os.O_EXCL)
}

func openFileLogger(opts Options, path string, flag int) (*FileLogger, error) {
	file, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "alto: open log file %q", path)
	}
	l := NewFileLogger(opts, file)
	l.path = path
	return l, nil
}

// FileName returns the path of the opened log file, or "" when the handler
// was built around a caller-provided writer.
func (f *FileLogger) FileName() string {
	return f.path
}

// SetDirectives replaces the directive set (instead of the GO_LOG one).
func (f *FileLogger) SetDirectives(ds *DirectiveSet) *FileLogger {
	if ds != nil {
		f.filters = ds
	}
	return f
}

// Enabled implements Handler by consulting the directive filter.
func (f *FileLogger) Enabled(target string, level Level) bool {
	return f.filters.Enabled(target, level)
}

// Handle implements Handler: one atomic plain-text write per record, write
// errors swallowed.
func (f *FileLogger) Handle(rec *Record) {
	f.outsMtx.Lock()
	defer f.outsMtx.Unlock()
	f.msgbuf.Reset()
	renderRecord(f.msgbuf, rec, &f.opts, false)
	_, _ = f.out.Write(f.msgbuf.Bytes())
}
