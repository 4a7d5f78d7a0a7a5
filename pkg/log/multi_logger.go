package log

// MultiLogger sends messages to multiple loggers.
// Useful for console output (via SlogAdapter) and file capture
// (via FileLogger) at the same time. Nil entries are skipped.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends messages to all provided loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Error sends the message to all configured loggers, in order.
func (m *MultiLogger) Error(message string) {
	for _, l := range m.loggers {
		if l == nil {
			continue
		}
		l.Error(message)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
