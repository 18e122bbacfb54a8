// Package lifecycle exposes inbox note events to a lifecycle.Router.
package lifecycle

import (
	"context"
	"strings"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notesbridge/pkg/core"
)

// Router topics, one per core.EventType.
var (
	TopicCreate = Topic(core.EventCreate)
	TopicError  = Topic(core.EventError)
)

// Topic returns the routing topic for an event type, e.g. "note/create".
func Topic(t core.EventType) string {
	return "note/" + strings.ToLower(string(t))
}

// NoteEvent carries a core.Event through a lifecycle.Router. The router
// matches handlers against String(), so it returns the topic.
type NoteEvent struct {
	core.Event
}

func (e NoteEvent) String() string {
	return Topic(e.Type)
}

// FromEvent recovers the note event delivered to a router handler.
func FromEvent(e lifecycle.Event) (core.Event, bool) {
	ne, ok := e.(NoteEvent)
	return ne.Event, ok
}

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource turns a core.Event channel (inbox.Watcher.Events) into a
// lifecycle.Source emitting NoteEvent values. The source closes its output
// once the input closes.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e core.Event
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case e, ok = <-s.events:
			}
			if !ok {
				return nil
			}
			select {
			case s.out <- NoteEvent{Event: e}:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}
