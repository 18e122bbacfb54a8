package core

import "errors"

// Common errors.
var (
	// ErrNoSelection is returned when the host application has no note selected.
	ErrNoSelection = errors.New("no note is currently selected")

	// ErrUnknownAdapter is returned when the configured adapter name is not registered.
	ErrUnknownAdapter = errors.New("unknown adapter")

	// ErrUnsupportedFormat is returned when no serializer handles an export format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
