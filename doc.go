// Package notesbridge is the Composition Root for the notesbridge application.
//
// It connects the core domain (pkg/core) with the adapter that drives the
// macOS Notes application through its scripting bridge (osascript).
//
// Every operation builds one AppleScript payload, hands it to the bridge and
// returns the textual result. Failures reported by Notes are returned
// unchanged; the only local recovery is in the bulk read path, where
// unparsable output degrades to an empty list.
//
// Usage:
//
//	svc, err := notesbridge.New(notesbridge.WithLogger(logger))
//
//	id, err := svc.CreateNote(ctx, "Groceries")
//	entries, err := svc.ListPlainText(ctx)
package notesbridge
