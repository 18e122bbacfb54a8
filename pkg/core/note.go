package core

import "fmt"

// Note is the central entity of the domain.
// It represents one note inside the Notes application, addressed by the
// opaque identifier the application assigned to it.
type Note struct {
	ID        string `json:"id"`
	Body      string `json:"body,omitempty"`
	PlainText string `json:"plaintext,omitempty"`
}

// PlainTextEntry is the record produced by the bulk read path.
// Field order matches the wire shape: id first, then plaintext.
type PlainTextEntry struct {
	ID        string `json:"id" yaml:"id"`
	PlainText string `json:"plaintext" yaml:"plaintext"`
}

// EventType represents the type of change observed by a watcher.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventError  EventType = "ERROR"
)

// Event represents a note created (or a failed attempt) on behalf of an
// external source such as a dropped file.
type Event struct {
	Type      EventType
	ID        string // Note identifier, empty for EventError.
	Source    string // Path or origin that triggered the event.
	Timestamp int64  // Unix timestamp
}

// String describes the event for logs and terminal output.
func (e Event) String() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s", e.Type, e.Source)
	}
	return fmt.Sprintf("%s %s (%s)", e.Type, e.ID, e.Source)
}
