package alto

/*********************************************************************************
io.Writer interface implementation

The LogClient implements io.Writer so it can be used with fmt.Fprintf and
other formatting helpers. The semantics are:
 - Lvl(level) sets the current level used by subsequent Write calls.
 - Write(p) dispatches the bytes at the currently set curLevel and returns
   len(p) with a nil error (delivery problems never surface here).

This allows patterns like:
  fmt.Fprintf(client.Lvl(LVL_WARN), "disk low: %d%%", percent)
*********************************************************************************/

// Lvl sets the client's current level (used by Write/fmt.Fprintf) and returns
// the same client for convenient chaining.
func (lc *LogClient) Lvl(level Level) *LogClient {
	lc.curLevel = normLevel(level)
	return lc
}

// Write implements io.Writer. It forwards the provided bytes as a log record
// at the client's curLevel. A nil payload is treated as a zero-length write.
// Source-location capture is skipped here: the immediate caller is fmt's
// internals, not the logging call site.
func (lc *LogClient) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	Dispatch(&Record{
		Level:   lc.curLevel,
		Target:  lc.target,
		Message: string(p),
	})
	return len(p), nil
}
