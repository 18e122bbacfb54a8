package osascript

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeBinary writes a shell script standing in for osascript.
func fakeBinary(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake osascript needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "osascript")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}
	return path
}

func TestClient_Run_FeedsScriptOnStdin(t *testing.T) {
	client := NewClient(fakeBinary(t, "cat"), nil)

	script := "tell application \"Notes\"\n\treturn \"quoted\"\nend tell\n"
	out, err := client.Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Only the final newline is trimmed.
	want := "tell application \"Notes\"\n\treturn \"quoted\"\nend tell"
	if out != want {
		t.Errorf("unexpected output:\nwant %q\ngot  %q", want, out)
	}
}

func TestClient_Run_PassesLanguage(t *testing.T) {
	client := NewClient(fakeBinary(t, `echo "$1 $2"`), nil)
	client.Language = "JavaScript"

	out, err := client.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "-l JavaScript" {
		t.Errorf("expected language flag, got %q", out)
	}
}

func TestClient_Run_ExecutionError(t *testing.T) {
	tests := []struct {
		name         string
		stderr       string
		wantMessage  string
		wantCode     int
		wantNotFound bool
	}{
		{
			name:        "Domain Error",
			stderr:      "161:206: execution error: No note is currently selected (-2700)",
			wantMessage: "No note is currently selected",
			wantCode:    -2700,
		},
		{
			name:         "Unresolved Note",
			stderr:       `45:68: execution error: Notes got an error: Can’t get note id "x-coredata://nope". (-1728)`,
			wantMessage:  `Notes got an error: Can’t get note id "x-coredata://nope".`,
			wantCode:     -1728,
			wantNotFound: true,
		},
		{
			name:        "Syntax Error",
			stderr:      "0:4: syntax error: A unknown token can’t go here. (-2740)",
			wantMessage: "0:4: syntax error: A unknown token can’t go here. (-2740)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(fakeBinary(t, "cat >/dev/null\necho '"+tt.stderr+"' >&2\nexit 1"), nil)

			_, err := client.Run(context.Background(), "irrelevant")
			if err == nil {
				t.Fatal("expected error")
			}

			var scriptErr *ScriptError
			if !errors.As(err, &scriptErr) {
				t.Fatalf("expected *ScriptError, got %T", err)
			}
			if err.Error() != tt.wantMessage {
				t.Errorf("message: want %q, got %q", tt.wantMessage, err.Error())
			}
			if scriptErr.Code != tt.wantCode {
				t.Errorf("code: want %d, got %d", tt.wantCode, scriptErr.Code)
			}
			if errors.Is(err, ErrObjectNotFound) != tt.wantNotFound {
				t.Errorf("errors.Is(ErrObjectNotFound) = %v, want %v", !tt.wantNotFound, tt.wantNotFound)
			}
		})
	}
}

func TestClient_Run_MissingBinary(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "does-not-exist"), nil)

	if client.IsInstalled() {
		t.Error("IsInstalled should be false for a missing binary")
	}
	if _, err := client.Run(context.Background(), "return 1"); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", nil)
	if client.Binary != DefaultBinary {
		t.Errorf("expected %q, got %q", DefaultBinary, client.Binary)
	}
	if client.Language != DefaultLanguage {
		t.Errorf("expected %q, got %q", DefaultLanguage, client.Language)
	}
}
