package applescript

import (
	"encoding/json"
	"log/slog"

	"github.com/aretw0/notesbridge/pkg/core"
)

// DecodePlainTextEntries parses the output of the enumeration script.
// It never fails: unparsable output is logged with the raw text and an
// empty list is returned. There is no partial recovery.
func DecodePlainTextEntries(raw string, logger *slog.Logger) []core.PlainTextEntry {
	var entries []core.PlainTextEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		if logger != nil {
			logger.Error("failed to parse notes plaintext", "error", err, "raw", raw)
		}
		return []core.PlainTextEntry{}
	}
	if entries == nil {
		entries = []core.PlainTextEntry{}
	}
	return entries
}
