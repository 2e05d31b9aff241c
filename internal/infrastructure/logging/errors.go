package logging

import "errors"

// Sentinel errors for logging sinks.
var (
	// ErrTeeClosed is returned when writing to a FileTee after Close.
	ErrTeeClosed = errors.New("logging: file tee closed")
)
