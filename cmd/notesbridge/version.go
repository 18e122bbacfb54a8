package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/notesbridge"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notesbridge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notesbridge version %s\n", strings.TrimSpace(notesbridge.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
