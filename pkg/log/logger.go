package log

// Logger receives error reports from the catalog loader.
type Logger interface {
	// Error records a failure message. Implementations must be safe for
	// concurrent use when shared between loaders.
	Error(message string)
}

// NoopLogger discards all messages.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Error discards the message.
func (NoopLogger) Error(string) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
