package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	readJSON bool
)

var bodyCmd = &cobra.Command{
	Use:   "body [id]",
	Short: "Print the HTML body of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := newService().NoteBody(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note body", err)
		}
		fmt.Println(body)
	},
}

var plaintextCmd = &cobra.Command{
	Use:   "plaintext [id]",
	Short: "Print the plain-text content of a note",
	Long:  `Print the plain-text content of a note, or the whole note (body and plaintext) as JSON with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := newService()

		if readJSON {
			note, err := svc.ReadNote(ctx, args[0])
			if err != nil {
				fatal("Failed to read note", err)
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		text, err := svc.NotePlainText(ctx, args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}
		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(bodyCmd)
	rootCmd.AddCommand(plaintextCmd)
	plaintextCmd.Flags().BoolVar(&readJSON, "json", false, "Output body and plaintext as JSON")
}
