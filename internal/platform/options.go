package platform

import (
	"log/slog"

	"github.com/aretw0/notesbridge/pkg/adapters/applescript"
	"github.com/aretw0/notesbridge/pkg/core"
)

// options holds the internal configuration for the notesbridge service.
type options struct {
	repository core.Repository
	executor   applescript.Executor
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
}

// Option defines a functional option for configuring notesbridge.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		executor:   nil,
		logger:     nil,
		adapter:    "applescript",
		config:     make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom repository (e.g. mock).
// If provided, the adapter selection is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the adapter to use by name.
// Defaults to "applescript".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithExecutor replaces the osascript client used by the applescript
// adapter. Useful for tests and for remote bridges.
func WithExecutor(exec applescript.Executor) Option {
	return func(o *options) {
		o.executor = exec
	}
}

// WithBinary sets the path of the scripting bridge binary.
// Defaults to "osascript" resolved on PATH.
func WithBinary(path string) Option {
	return func(o *options) {
		o.config["binary"] = path
	}
}
