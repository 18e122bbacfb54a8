package inbox

import (
	"time"

	"github.com/aretw0/introspection"
)

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Dir       string     `json:"dir"`
	Pattern   string     `json:"pattern"`
	Active    bool       `json:"active"`
	Created   int        `json:"created"`
	Failed    int        `json:"failed"`
	LastEvent *time.Time `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	w.mu.Lock()
	defer w.mu.Unlock()

	return WatcherState{
		Dir:       w.config.Dir,
		Pattern:   w.config.Pattern,
		Active:    w.active,
		Created:   w.created,
		Failed:    w.failed,
		LastEvent: w.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "inbox"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
}

func (w *Watcher) record(ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	w.lastEvent = &now
	if ok {
		w.created++
	} else {
		w.failed++
	}
}
