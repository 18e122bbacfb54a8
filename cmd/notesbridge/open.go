package main

import (
	"context"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Open a note in a separate window",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := newService().OpenNote(context.Background(), args[0]); err != nil {
			fatal("Failed to open note", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
