// A lightweight, levelled log renderer for Go. Turns structured records
// into colorized single-line or multi-line terminal output, filtered per
// target by compact GO_LOG-style directives:
//
//	GO_LOG="tokio=warn,my_module=info,my_module::inner=trace"
//
// Typical setup:
//
//	func main() {
//	    err := alto.Init(alto.NewTermLogger(alto.Options{}.
//	        WithStyle(alto.STYLE_SINGLE_LINE). // default is the multi-line layout
//	        WithTime(alto.TimeRelative()).     // default is no timestamp
//	        WithColor(alto.OnlyLevelColors()), // default is the full palette
//	    ))
//	    if err != nil {
//	        panic(err)
//	    }
//	    log := alto.NewClient("my_module")
//	    log.LogInfo("hello world")
//	}
package alto

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Handler is the contract a renderer backend implements: a pure filter
// query plus a synchronous record consumer. Enabled must be safe for
// unsynchronized concurrent use; Handle provides its own output-stream
// exclusion.
type Handler interface {
	Enabled(target string, level Level) bool
	Handle(rec *Record)
}

// ErrAlreadyInitialized is returned by Init when a handler is already
// installed. Double initialization is a programming error in the host, so
// it is surfaced rather than silently ignored; the first configuration
// stays intact.
var ErrAlreadyInitialized = errors.New("alto: logger already initialized")

// installed is the process-wide single-assignment handler slot. Stored
// behind an atomic pointer so the dominant disabled-record path needs no
// lock and racing Init calls leave exactly one winner.
var installed atomic.Pointer[handlerRef]

type handlerRef struct{ h Handler }

// Init installs the process-wide handler. Exactly one call per process
// succeeds; every later (or concurrently losing) call gets
// ErrAlreadyInitialized. There is no way to replace or tear down the
// handler afterwards: it lives until process exit.
func Init(h Handler) error {
	if h == nil {
		return errors.New("alto: nil handler")
	}
	if !installed.CompareAndSwap(nil, &handlerRef{h: h}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// InitTermLogger is a convenience to create and install a default terminal
// handler in one call.
func InitTermLogger() error {
	return Init(NewTermLogger(Options{}))
}

// Dispatch feeds one record through the installed handler. The filter gate
// runs first: a disabled record returns immediately with no I/O and no
// lock traffic. Records dispatched before Init (or with no handler ever
// installed) are silently discarded.
func Dispatch(rec *Record) {
	ref := installed.Load()
	if ref == nil || rec == nil {
		return
	}
	if ref.h.Enabled(rec.Target, normLevel(rec.Level)) {
		ref.h.Handle(rec)
	}
}
