package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
	filterID string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes with their first line",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		entries, err := svc.ListPlainText(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		filtered, err := svc.Filter(entries, filterID)
		if err != nil {
			fatal("Failed to filter notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, e := range filtered {
			title, _, _ := strings.Cut(strings.TrimSpace(e.PlainText), "\n")
			fmt.Printf("%s %s\n", e.ID, title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterID, "id", "", "Keep notes whose ID matches a glob (e.g. '**/ICNote/*')")
}
