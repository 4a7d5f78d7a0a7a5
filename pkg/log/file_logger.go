package log

import (
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// FileLogger writes error reports to a file as a stream of CBOR events.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	file      *os.File
	encoder   *cbor.Encoder
	sessionID string
	now       func() time.Time
	mu        sync.Mutex
	closed    bool
}

// NewFileLogger creates a new FileLogger that writes to the specified path.
// If the file exists, new events are appended. The file is created with
// permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:      f,
		encoder:   NewEncoder(f),
		sessionID: uuid.New().String(),
		now:       time.Now,
	}, nil
}

// SessionID returns the ID stamped on every event this logger writes.
func (l *FileLogger) SessionID() string {
	return l.sessionID
}

// Error appends an event carrying message to the log file.
func (l *FileLogger) Error(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Encoding errors are dropped; reporting must not mask the original failure.
	_ = l.encoder.Encode(Event{
		Timestamp: l.now(),
		SessionID: l.sessionID,
		Message:   message,
	})
}

// Close closes the log file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Error calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
