package platform

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("NOTESBRIDGE_OSASCRIPT", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportFormat != "json" {
		t.Errorf("expected default export format json, got %q", cfg.ExportFormat)
	}
	if len(cfg.Options()) != 0 {
		t.Errorf("expected no options from empty config, got %d", len(cfg.Options()))
	}
}

func TestLoadConfigPartial(t *testing.T) {
	t.Setenv("NOTESBRIDGE_OSASCRIPT", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`
osascript = "/usr/local/bin/osascript"
inbox_dir = "/Users/me/Inbox"
inbox_pattern = "*.txt"
`), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Osascript != "/usr/local/bin/osascript" {
		t.Errorf("expected osascript override, got %q", cfg.Osascript)
	}
	if cfg.InboxDir != "/Users/me/Inbox" || cfg.InboxPattern != "*.txt" {
		t.Errorf("unexpected inbox config: %+v", cfg)
	}
	if cfg.ExportFormat != "json" {
		t.Errorf("expected default export format, got %q", cfg.ExportFormat)
	}
	if len(cfg.Options()) != 1 {
		t.Errorf("expected one option, got %d", len(cfg.Options()))
	}
}

func TestLoadConfigIgnoresLanguage(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake osascript needs a POSIX shell")
	}
	t.Setenv("NOTESBRIDGE_OSASCRIPT", "")
	dir := t.TempDir()

	// Stands in for osascript and echoes the -l flag it was given.
	bin := filepath.Join(dir, "osascript")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\necho \"$1 $2\"\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("osascript = \""+bin+"\"\nlanguage = \"JavaScript\"\n"), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo, err := Init(cfg.Options()...)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	out, err := repo.Body(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	if out != "-l AppleScript" {
		t.Errorf("payloads must run as AppleScript, got %q", out)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`osascript = "/from/file"`), 0o644)
	t.Setenv("NOTESBRIDGE_OSASCRIPT", "/from/env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Osascript != "/from/env" {
		t.Errorf("expected env override, got %q", cfg.Osascript)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`osascript = `), 0o644)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigFilePath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	want := filepath.Join(tmp, "notesbridge", "config.toml")
	if got := ConfigFilePath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
