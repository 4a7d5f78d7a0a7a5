package catalog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a catalog file has an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// ValidationError describes a single problem with a raw catalog entry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// LoadError reports which device stopped a catalog load.
type LoadError struct {
	// Source names the catalog the device came from (e.g. "devices.json").
	Source string

	// Device is the raw name of the offending device, possibly empty.
	Device string

	// Index is the position of the device in the catalog.
	Index int

	// Cause is the underlying validation error.
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Issue encountered while parsing device %q in the device configuration file %s: %s",
		e.Device, e.Source, e.Cause.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SourceError provides details about a failure to read or decode a catalog file.
type SourceError struct {
	// File is the path to the file that failed to load, if any.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *SourceError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}
