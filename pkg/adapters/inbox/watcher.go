// Package inbox turns files dropped into a directory into new notes.
package inbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notesbridge/pkg/core"
)

const (
	// DefaultPattern matches markdown and text files at any depth.
	DefaultPattern = "**/*.{md,txt}"
	// DefaultDebounce collapses the burst of events editors emit on save.
	DefaultDebounce = 200 * time.Millisecond
)

// Creator creates a note from text and returns its identifier.
// core.Service satisfies it.
type Creator interface {
	CreateNote(ctx context.Context, text string) (string, error)
}

// Config holds the watcher configuration.
type Config struct {
	Dir          string
	Pattern      string // doublestar pattern relative to Dir
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Watcher observes Dir and creates one note per matching file written.
type Watcher struct {
	config  Config
	creator Creator
	events  chan core.Event
	ready   chan string
	done    chan struct{}

	mu        sync.Mutex
	timers    map[string]*time.Timer
	active    bool
	created   int
	failed    int
	lastEvent *time.Time
}

// New creates a watcher. Call Start to begin watching.
func New(creator Creator, config Config) *Watcher {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{
		config:  config,
		creator: creator,
		events:  make(chan core.Event, 16),
		ready:   make(chan string, 64),
		done:    make(chan struct{}),
		timers:  make(map[string]*time.Timer),
	}
}

// Events returns the channel of created notes. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan core.Event {
	return w.events
}

// Start validates the configuration, registers the directory tree and
// launches the event loop. It returns once watching has begun.
func (w *Watcher) Start(ctx context.Context) error {
	if !doublestar.ValidatePattern(w.config.Pattern) {
		return fmt.Errorf("invalid inbox pattern %q: %w", w.config.Pattern, doublestar.ErrBadPattern)
	}

	info, err := os.Stat(w.config.Dir)
	if err != nil {
		return fmt.Errorf("inbox directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inbox path is not a directory: %s", w.config.Dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(watcher, w.config.Dir); err != nil {
		_ = watcher.Close()
		return err
	}

	w.setActive(true)
	w.config.Logger.Info("watching inbox", "dir", w.config.Dir, "pattern", w.config.Pattern)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		return w.run(ctx, watcher)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.reportError(fmt.Errorf("inbox loop: %w", err))
	}))
	return nil
}

func (w *Watcher) run(ctx context.Context, watcher *fsnotify.Watcher) error {
	defer close(w.events)
	defer close(w.done)
	defer w.setActive(false)
	defer watcher.Close()
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleFilesystemEvent(watcher, event)

		case path := <-w.ready:
			w.importFile(ctx, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) handleFilesystemEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(watcher, event.Name); err != nil {
				w.reportError(err)
			}
			return
		}
	}

	if !w.matches(event.Name) {
		return
	}
	w.config.Logger.Debug("inbox event", "path", event.Name, "op", event.Op.String())
	w.schedule(event.Name)
}

// schedule (re)arms the debounce timer for path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		select {
		case w.ready <- path:
		case <-w.done:
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

func (w *Watcher) matches(path string) bool {
	rel, err := filepath.Rel(w.config.Dir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(filepath.Base(rel), ".") {
		return false
	}
	ok, err := doublestar.Match(w.config.Pattern, rel)
	return err == nil && ok
}

func (w *Watcher) importFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.fail(ctx, path, fmt.Errorf("read %s: %w", path, err))
		return
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		w.config.Logger.Debug("skipping empty inbox file", "path", path)
		return
	}

	id, err := w.creator.CreateNote(ctx, text)
	if err != nil {
		w.fail(ctx, path, fmt.Errorf("create note from %s: %w", path, err))
		return
	}

	w.record(true)
	w.config.Logger.Info("note created from inbox", "id", id, "path", path)
	w.send(ctx, core.Event{Type: core.EventCreate, ID: id, Source: path, Timestamp: time.Now().Unix()})
}

func (w *Watcher) fail(ctx context.Context, path string, err error) {
	w.record(false)
	w.reportError(err)
	w.send(ctx, core.Event{Type: core.EventError, Source: path, Timestamp: time.Now().Unix()})
}

func (w *Watcher) send(ctx context.Context, e core.Event) {
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}

func (w *Watcher) reportError(err error) {
	w.config.Logger.Error("inbox error", "error", err)
	if w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
