package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the business logic for notes.
// It is a thin pass-through: host errors are returned exactly as the
// repository produced them.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// CreateNote creates a note with an optional body and returns its ID.
func (s *Service) CreateNote(ctx context.Context, text string) (string, error) {
	id, err := s.repo.Create(ctx, text)
	if err != nil {
		return "", err
	}
	s.logger.Debug("note created", "id", id)
	return id, nil
}

// OpenNote shows a note in its own window.
func (s *Service) OpenNote(ctx context.Context, id string) error {
	return s.repo.Show(ctx, id)
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// RestoreNote moves a deleted note back into the default folder.
func (s *Service) RestoreNote(ctx context.Context, id string) error {
	return s.repo.Restore(ctx, id)
}

// NoteBody retrieves the rich body of a note.
func (s *Service) NoteBody(ctx context.Context, id string) (string, error) {
	return s.repo.Body(ctx, id)
}

// NotePlainText retrieves the plain-text content of a note.
func (s *Service) NotePlainText(ctx context.Context, id string) (string, error) {
	return s.repo.PlainText(ctx, id)
}

// SetNoteBody overwrites the body of a note.
func (s *Service) SetNoteBody(ctx context.Context, id, body string) error {
	return s.repo.SetBody(ctx, id, body)
}

// SelectedNote returns the ID of the note selected in the host UI.
func (s *Service) SelectedNote(ctx context.Context) (string, error) {
	return s.repo.Selected(ctx)
}

// ReadNote fetches both representations of a note.
// It issues two independent requests, one after the other.
func (s *Service) ReadNote(ctx context.Context, id string) (Note, error) {
	body, err := s.repo.Body(ctx, id)
	if err != nil {
		return Note{}, err
	}
	text, err := s.repo.PlainText(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return Note{ID: id, Body: body, PlainText: text}, nil
}

// ListPlainText retrieves the plaintext of every note in every account.
func (s *Service) ListPlainText(ctx context.Context) ([]PlainTextEntry, error) {
	entries, err := s.repo.ListPlainText(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("notes enumerated", "count", len(entries))
	return entries, nil
}

// Filter keeps the entries whose ID matches a doublestar pattern.
// An empty pattern keeps everything.
func (s *Service) Filter(entries []PlainTextEntry, pattern string) ([]PlainTextEntry, error) {
	if pattern == "" {
		return entries, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid id pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	filtered := make([]PlainTextEntry, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(pattern, e.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
