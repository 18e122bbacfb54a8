package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var createFromStdin bool

var createCmd = &cobra.Command{
	Use:   "create [text]",
	Short: "Create a new note",
	Long:  `Create a new note in Notes, optionally with its body set, and bring it to the foreground.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var text string
		if len(args) == 1 {
			text = args[0]
		}
		if createFromStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			text = string(data)
		}

		id, err := newService().CreateNote(context.Background(), text)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().BoolVar(&createFromStdin, "stdin", false, "Read the note body from stdin")
}
