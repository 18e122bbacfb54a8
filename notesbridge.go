package notesbridge

import (
	"log/slog"

	"github.com/aretw0/notesbridge/internal/platform"
	"github.com/aretw0/notesbridge/pkg/adapters/applescript"
	"github.com/aretw0/notesbridge/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// PlainTextEntry is a public alias for the bulk read record.
type PlainTextEntry = core.PlainTextEntry

// Config is the on-disk configuration file.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring notesbridge.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom repository.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithExecutor replaces the scripting bridge client.
func WithExecutor(exec applescript.Executor) Option {
	return platform.WithExecutor(exec)
}

// WithBinary sets the path of the osascript binary.
func WithBinary(path string) Option {
	return platform.WithBinary(path)
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// ConfigFilePath returns the default configuration file location.
func ConfigFilePath() string {
	return platform.ConfigFilePath()
}

// --- Factory ---

// New creates a new notesbridge Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// Init builds the configured repository without the service layer.
func Init(opts ...Option) (core.Repository, error) {
	return platform.Init(opts...)
}
