package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Move a deleted note back to the default folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := newService().RestoreNote(context.Background(), args[0]); err != nil {
			fatal("Failed to restore note", err)
		}
		fmt.Printf("Note restored: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
