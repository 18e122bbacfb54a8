package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notesbridge/pkg/core"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "notesbridge-tmp-"
)

// WriteFile serializes entries using the serializer matching the file
// extension and replaces filename atomically.
func WriteFile(filename string, entries []core.PlainTextEntry) error {
	s, err := ForFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	data, err := s.Serialize(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}
	return writeFileAtomic(filename, data, 0644)
}

// ReadFile parses a previous export.
func ReadFile(filename string) ([]core.PlainTextEntry, error) {
	s, err := ForFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.Parse(f)
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
