package applescript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/aretw0/notesbridge/pkg/osascript"
)

// Executor runs one script payload inside the host's scripting engine.
type Executor interface {
	Run(ctx context.Context, script string) (string, error)
}

// Config holds the configuration for the AppleScript repository.
type Config struct {
	Executor Executor
	Logger   *slog.Logger
}

// Repository implements core.Repository by driving the Notes application.
type Repository struct {
	exec   Executor
	logger *slog.Logger
}

// NewRepository creates a new Notes-backed repository.
// A nil executor defaults to the system osascript binary.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	exec := config.Executor
	if exec == nil {
		exec = osascript.NewClient("", logger)
	}
	return &Repository{exec: exec, logger: logger}
}

// Create makes a new note. An empty text leaves the body untouched.
func (r *Repository) Create(ctx context.Context, text string) (string, error) {
	return r.exec.Run(ctx, fmt.Sprintf(createScript, EscapeDoubleQuotes(text)))
}

// Show opens the note's folder and the note in a separate window.
func (r *Repository) Show(ctx context.Context, id string) error {
	_, err := r.exec.Run(ctx, fmt.Sprintf(showScript, EscapeDoubleQuotes(id)))
	return err
}

// Delete removes a note by its ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.exec.Run(ctx, fmt.Sprintf(deleteScript, EscapeDoubleQuotes(id)))
	return err
}

// Restore moves a note to the default folder of the first account.
func (r *Repository) Restore(ctx context.Context, id string) error {
	_, err := r.exec.Run(ctx, fmt.Sprintf(restoreScript, EscapeDoubleQuotes(id)))
	return err
}

// Body returns the HTML body of a note.
func (r *Repository) Body(ctx context.Context, id string) (string, error) {
	return r.exec.Run(ctx, fmt.Sprintf(bodyScript, EscapeDoubleQuotes(id)))
}

// PlainText returns the plain-text content of a note.
func (r *Repository) PlainText(ctx context.Context, id string) (string, error) {
	return r.exec.Run(ctx, fmt.Sprintf(plainTextScript, EscapeDoubleQuotes(id)))
}

// SetBody overwrites a note's body.
func (r *Repository) SetBody(ctx context.Context, id, body string) error {
	_, err := r.exec.Run(ctx, fmt.Sprintf(setBodyScript, EscapeDoubleQuotes(id), EscapeDoubleQuotes(body)))
	return err
}

// Selected returns the ID of the first selected note.
func (r *Repository) Selected(ctx context.Context) (string, error) {
	id, err := r.exec.Run(ctx, selectedScript)
	if err != nil {
		if isNoSelection(err) {
			r.logger.Debug("selection is empty", "error", err)
			return "", core.ErrNoSelection
		}
		return "", err
	}
	return id, nil
}

// ListPlainText runs the enumeration script and decodes its output.
func (r *Repository) ListPlainText(ctx context.Context) ([]core.PlainTextEntry, error) {
	raw, err := r.exec.Run(ctx, listPlainTextScript)
	if err != nil {
		return nil, err
	}
	return DecodePlainTextEntries(raw, r.logger), nil
}

func isNoSelection(err error) bool {
	var scriptErr *osascript.ScriptError
	if errors.As(err, &scriptErr) {
		return strings.Contains(scriptErr.Message, noSelectionMessage)
	}
	return strings.Contains(err.Error(), noSelectionMessage)
}

var _ core.Repository = (*Repository)(nil)
