package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	writeBody string
)

// setBodyCmd represents the set-body command
var setBodyCmd = &cobra.Command{
	Use:   "set-body [id]",
	Short: "Overwrite the body of a note",
	Long: `Overwrite the body of a note with --body, or with stdin when --body is omitted.
The body is HTML as understood by Notes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body := writeBody
		if !cmd.Flags().Changed("body") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			body = string(data)
		}

		if err := newService().SetNoteBody(context.Background(), args[0], body); err != nil {
			fatal("Failed to set note body", err)
		}

		fmt.Printf("Note '%s' updated.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(setBodyCmd)
	setBodyCmd.Flags().StringVar(&writeBody, "body", "", "New note body")
}
