package alto

import (
	"errors"
	"strings"
	"sync"
)

// Shared test doubles, modeled after the capture writers used across the
// package's test suite.

// FakeWriter accumulates everything written to it. Handlers serialize their
// writes, so no locking is needed when a single handler owns the writer.
type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

// CountWriter counts Write calls; used to probe that disabled records
// produce zero stream traffic.
type CountWriter struct {
	calls int
}

func (c *CountWriter) Write(b []byte) (int, error) {
	c.calls++
	return len(b), nil
}

// ErrorWriter fails every write; used to prove output errors are swallowed.
type ErrorWriter struct{}

func (e *ErrorWriter) Write(b []byte) (int, error) {
	return 0, errors.New("error generated in writer")
}

// recordingHandler captures dispatched records for assertions. Its gate is
// a plain minimum level so tests can exercise the dispatcher without a
// directive set.
type recordingHandler struct {
	mu   sync.Mutex
	min  Level
	recs []Record
}

func newRecordingHandler(min Level) *recordingHandler {
	return &recordingHandler{min: min}
}

func (r *recordingHandler) Enabled(target string, level Level) bool {
	return level <= r.min
}

func (r *recordingHandler) Handle(rec *Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, *rec)
}

func (r *recordingHandler) records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.recs...)
}

// resetInstalled clears the process-wide handler slot between tests.
func resetInstalled() {
	installed.Store(nil)
}

// mustParse builds a DirectiveSet from a spec the test knows is valid.
func mustParse(spec string) *DirectiveSet {
	ds, err := ParseDirectives(spec)
	if err != nil {
		panic(err)
	}
	return ds
}

// splitBlocks cuts multi-line output into its blank-line-terminated blocks.
func splitBlocks(out string) []string {
	var blocks []string
	for _, b := range strings.Split(out, "\n\n") {
		if strings.TrimSpace(b) != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
