package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notesbridge/pkg/export"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportFormat string
	exportID     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plaintext of every note",
	Long: `Export reads every note of every account in one request and writes the
result as json, yaml, csv or md. With --out the format follows the file
extension and the file is replaced atomically; otherwise it goes to stdout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		entries, err := svc.ListPlainText(context.Background())
		if err != nil {
			fatal("Failed to read notes", err)
		}
		entries, err = svc.Filter(entries, exportID)
		if err != nil {
			fatal("Failed to filter notes", err)
		}

		if exportOut != "" {
			if err := export.WriteFile(exportOut, entries); err != nil {
				fatal("Failed to export notes", err)
			}
			slog.Info("notes exported", "count", len(entries), "path", exportOut)
			return
		}

		format := exportFormat
		if format == "" {
			format = cfg.ExportFormat
		}
		s, err := export.ForFormat(format)
		if err != nil {
			fatal("Failed to export notes", err)
		}
		data, err := s.Serialize(entries)
		if err != nil {
			fatal("Failed to serialize notes", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			fatal("Failed to write output", err)
		}
		fmt.Fprintln(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (format from extension)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format for stdout: json, yaml, csv, md")
	exportCmd.Flags().StringVar(&exportID, "id", "", "Keep notes whose ID matches a glob")
}
