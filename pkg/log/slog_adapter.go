package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes error reports to an slog.Logger at Error level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
// A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Error writes the message with a component attribute.
func (a *SlogAdapter) Error(message string) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, message,
		slog.String("component", "catalog"),
	)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
