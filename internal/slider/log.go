package slider

import "log"

// Logger receives diagnostics and trace lines.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger adapts the standard log package to Logger.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) {
	log.Printf(format, args...)
}

func (c *Controller) tracef(format string, args ...any) {
	if !isTraceLoggingEnabled() {
		return
	}
	c.logger.Printf("slider %s: "+format, append([]any{c.id}, args...)...)
}
