package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/aretw0/notesbridge/pkg/export"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	want := []string{
		"create", "open", "delete", "restore", "body", "plaintext",
		"set-body", "selected", "list", "export", "import", "watch", "version",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

type fakeCreator struct {
	texts  []string
	failOn string
}

func (f *fakeCreator) CreateNote(ctx context.Context, text string) (string, error) {
	if text == f.failOn {
		return "", errors.New("Notes got an error: AppleEvent timed out.")
	}
	f.texts = append(f.texts, text)
	return "x-coredata://new/ICNote/p" + string(rune('0'+len(f.texts))), nil
}

func TestImportNotes_FromExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	entries := []core.PlainTextEntry{
		{ID: "x-coredata://old/ICNote/p1", PlainText: "first"},
		{ID: "x-coredata://old/ICNote/p2", PlainText: "  \n"},
		{ID: "x-coredata://old/ICNote/p3", PlainText: "Say \"hi\"\r\nlater"},
	}
	if err := export.WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	read, err := export.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	creator := &fakeCreator{}
	n, err := importNotes(context.Background(), creator, read)
	if err != nil {
		t.Fatalf("importNotes failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 notes created, got %d", n)
	}
	if len(creator.texts) != 2 || creator.texts[1] != "Say \"hi\"\r\nlater" {
		t.Errorf("unexpected created texts: %q", creator.texts)
	}
}

func TestImportNotes_StopsOnFailure(t *testing.T) {
	creator := &fakeCreator{failOn: "b"}
	entries := []core.PlainTextEntry{
		{ID: "p1", PlainText: "a"},
		{ID: "p2", PlainText: "b"},
		{ID: "p3", PlainText: "c"},
	}

	n, err := importNotes(context.Background(), creator, entries)
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 1 {
		t.Errorf("expected 1 note before the failure, got %d", n)
	}
	if len(creator.texts) != 1 || creator.texts[0] != "a" {
		t.Errorf("expected only the first note created, got %q", creator.texts)
	}
}
