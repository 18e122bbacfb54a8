package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/aretw0/notesbridge/pkg/export"
	"github.com/spf13/cobra"
)

var importID string

// noteCreator is the part of core.Service import needs.
type noteCreator interface {
	CreateNote(ctx context.Context, text string) (string, error)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create notes from a previous export",
	Long: `Import reads a file written by export (format from its extension) and
creates one new note per entry. Original IDs are not reused; the host assigns
new ones. Entries with blank text are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := export.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read export", err)
		}

		svc := newService()
		entries, err = svc.Filter(entries, importID)
		if err != nil {
			fatal("Failed to filter notes", err)
		}

		n, err := importNotes(context.Background(), svc, entries)
		if err != nil {
			fatal("Failed to import notes", err)
		}
		slog.Info("notes imported", "count", n, "path", args[0])
	},
}

// importNotes creates one note per non-blank entry, stopping at the first
// failure. It returns how many notes were created.
func importNotes(ctx context.Context, c noteCreator, entries []core.PlainTextEntry) (int, error) {
	created := 0
	for _, e := range entries {
		if strings.TrimSpace(e.PlainText) == "" {
			continue
		}
		id, err := c.CreateNote(ctx, e.PlainText)
		if err != nil {
			return created, fmt.Errorf("import %s: %w", e.ID, err)
		}
		slog.Debug("note imported", "from", e.ID, "id", id)
		created++
	}
	return created, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importID, "id", "", "Import only entries whose original ID matches a glob")
}
