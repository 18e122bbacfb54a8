package notesbridge_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/notesbridge"
)

// cannedBridge stands in for osascript and answers every script with the
// output of the enumeration script for a two-note library.
type cannedBridge struct{}

func (cannedBridge) Run(ctx context.Context, script string) (string, error) {
	return `[{"id":"x-coredata://A/ICNote/p1","plaintext":"Groceries\n- milk"},` +
		`{"id":"x-coredata://A/ICNote/p2","plaintext":"Say \"hi\"\nlater"}]`, nil
}

// Example_listPlainText demonstrates reading every note's plaintext in one call.
func Example_listPlainText() {
	svc, err := notesbridge.New(notesbridge.WithExecutor(cannedBridge{}))
	if err != nil {
		log.Fatal(err)
	}

	entries, err := svc.ListPlainText(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range entries {
		title, _, _ := strings.Cut(e.PlainText, "\n")
		fmt.Printf("%s: %s\n", e.ID, title)
	}
	// Output:
	// x-coredata://A/ICNote/p1: Groceries
	// x-coredata://A/ICNote/p2: Say "hi"
}
