package core

import "context"

// Repository defines the contract for driving the notes host application.
// Every method maps to exactly one request to the host; implementations
// must not retry and must surface host failures unchanged.
type Repository interface {
	// Create makes a new note, optionally with its body set, and brings it
	// to the foreground. It returns the identifier of the new note.
	Create(ctx context.Context, text string) (string, error)

	// Show opens the note's folder and the note itself in a separate window.
	Show(ctx context.Context, id string) error

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id string) error

	// Restore moves a note back to the default folder of the first account.
	Restore(ctx context.Context, id string) error

	// Body returns the rich (HTML) body of a note.
	Body(ctx context.Context, id string) (string, error)

	// PlainText returns the plain-text content of a note.
	PlainText(ctx context.Context, id string) (string, error)

	// SetBody overwrites the body of a note.
	SetBody(ctx context.Context, id, body string) error

	// Selected returns the identifier of the note selected in the host UI.
	// It returns ErrNoSelection when nothing is selected.
	Selected(ctx context.Context) (string, error)

	// ListPlainText enumerates every note of every account.
	// Malformed output degrades to an empty list; only executor failures
	// are returned as errors.
	ListPlainText(ctx context.Context) ([]PlainTextEntry, error)
}
