package alto

/*
Fan-out handler: forwards each record to several handlers so one process
can, for example, colorize to the terminal and keep a plain file copy.
*/

// MultiLogger dispatches records to any number of sub-handlers. It carries
// its own directive gate; each sub-handler's gate is consulted again on
// delivery, so per-sink filters still apply.
type MultiLogger struct {
	filters  *DirectiveSet
	handlers []Handler
}

// NewMultiLogger creates an empty fan-out handler with directives read from
// the GO_LOG environment variable.
func NewMultiLogger() *MultiLogger {
	return &MultiLogger{filters: DirectivesFromEnv()}
}

// With adds a handler to the fan-out set. Nil handlers are ignored.
// Returns the same MultiLogger for chaining.
func (m *MultiLogger) With(h Handler) *MultiLogger {
	if h != nil {
		m.handlers = append(m.handlers, h)
	}
	return m
}

// SetDirectives replaces the directive set (instead of the GO_LOG one).
func (m *MultiLogger) SetDirectives(ds *DirectiveSet) *MultiLogger {
	if ds != nil {
		m.filters = ds
	}
	return m
}

// Enabled implements Handler by consulting the fan-out's own filter.
func (m *MultiLogger) Enabled(target string, level Level) bool {
	return m.filters.Enabled(target, level)
}

// Handle implements Handler by forwarding to every sub-handler that wants
// the record.
func (m *MultiLogger) Handle(rec *Record) {
	for _, h := range m.handlers {
		if h.Enabled(rec.Target, rec.Level) {
			h.Handle(rec)
		}
	}
}
