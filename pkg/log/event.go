package log

import "time"

// Event is one error report captured by FileLogger.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the report was made (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the FileLogger that wrote the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Message is the reported error text.
	Message string `cbor:"3,keyasint"`
}
