// Package log provides the error reporting collaborator used by the device
// catalog loader.
//
// The loader reports every validation failure through the Logger interface
// once, before returning the error. Applications choose where those reports
// go by passing a Logger implementation:
//
//	// Console output via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Persistent capture to a CBOR event file
//	fileLogger, _ := log.NewFileLogger("/var/log/devicecatalog/errors.clog")
//
//	// Both
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fileLogger)
//
// Pass nil or NoopLogger to disable reporting.
//
// # File Format
//
// FileLogger writes a stream of CBOR-encoded Event values. Each FileLogger
// tags its events with a random session ID so several runs appended to the
// same file can be told apart. Reader iterates such a file.
package log
