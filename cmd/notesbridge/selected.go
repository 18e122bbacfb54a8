package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var selectedCmd = &cobra.Command{
	Use:   "selected",
	Short: "Print the ID of the note selected in Notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		id, err := newService().SelectedNote(context.Background())
		if err != nil {
			fatal("Failed to read selection", err)
		}
		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(selectedCmd)
}
