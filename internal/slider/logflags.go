package slider

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled turns per-event trace lines on or off for every
// controller in the process.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}
