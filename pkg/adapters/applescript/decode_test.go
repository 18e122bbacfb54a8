package applescript

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notesbridge/pkg/core"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestDecodePlainTextEntries(t *testing.T) {
	t.Run("Empty Array", func(t *testing.T) {
		logger, buf := newBufferLogger()
		entries := DecodePlainTextEntries("[]", logger)
		require.NotNil(t, entries)
		assert.Empty(t, entries)
		assert.Empty(t, buf.String())
	})

	t.Run("Well Formed", func(t *testing.T) {
		raw := `[{"id":"x-coredata://A/ICNote/p1","plaintext":"one\nline"},{"id":"x-coredata://A/ICNote/p2","plaintext":"say \"hi\""}]`
		entries := DecodePlainTextEntries(raw, nil)
		assert.Equal(t, []core.PlainTextEntry{
			{ID: "x-coredata://A/ICNote/p1", PlainText: "one\nline"},
			{ID: "x-coredata://A/ICNote/p2", PlainText: `say "hi"`},
		}, entries)
	})

	t.Run("One Malformed Entry Drops Batch", func(t *testing.T) {
		logger, buf := newBufferLogger()
		raw := `[{"id":"p1","plaintext":"ok"},{"id":"p2","plaintext":"broken "quote""}]`
		entries := DecodePlainTextEntries(raw, logger)
		require.NotNil(t, entries)
		assert.Empty(t, entries)
		assert.Contains(t, buf.String(), "failed to parse notes plaintext")
		assert.Contains(t, buf.String(), "p2")
	})

	t.Run("Host Error Text", func(t *testing.T) {
		logger, buf := newBufferLogger()
		entries := DecodePlainTextEntries("execution error: Notes got an error", logger)
		assert.Empty(t, entries)
		assert.Contains(t, buf.String(), "Notes got an error")
	})

	t.Run("Null", func(t *testing.T) {
		entries := DecodePlainTextEntries("null", nil)
		require.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

// hostOutput assembles what the enumeration script returns for the given
// notes, using the Go mirror of the escape sequence.
func hostOutput(entries []core.PlainTextEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, `{"id":"`+e.ID+`","plaintext":"`+EscapeJSONText(e.PlainText)+`"}`)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestDecodePlainTextEntries_HostRoundTrip(t *testing.T) {
	notes := []core.PlainTextEntry{
		{ID: "x-coredata://A/ICNote/p1", PlainText: "Groceries\r\n- milk\n- \"good\" bread\t(2)"},
		{ID: "x-coredata://A/ICNote/p2", PlainText: `path C:\tmp\new`},
		{ID: "x-coredata://B/ICNote/p9", PlainText: ""},
	}

	assert.Equal(t, notes, DecodePlainTextEntries(hostOutput(notes), nil))
	assert.Equal(t, "[]", hostOutput(nil))
}
