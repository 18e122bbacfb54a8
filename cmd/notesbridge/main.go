package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/aretw0/notesbridge/pkg/osascript"
)

const (
	exitFailure     = 1
	exitNoSelection = 2
)

func main() {
	Execute()
}

// fatal reports err under msg and exits with the code matching err.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", msg, describe(err))
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if errors.Is(err, core.ErrNoSelection) {
		return exitNoSelection
	}
	return exitFailure
}

// describe replaces host errors the user can act on with a short message.
func describe(err error) string {
	if errors.Is(err, osascript.ErrObjectNotFound) {
		return "note does not exist"
	}
	return err.Error()
}
