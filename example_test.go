package scrib_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"scrib"
	"scrib/pkg/core"
)

// Example_basic demonstrates how to initialize a vault, create a note, and
// read it back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "scrib-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the scrib service targeting the temporary directory.
	// WithAutoInit(true) ensures the vault directory exists.
	vault, err := scrib.New(tmpDir, scrib.WithAutoInit(true))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create a note
	note, err := vault.Create(ctx, "Groceries", "milk, eggs, coffee", []string{"home"})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Read it back
	got, err := vault.Get(ctx, note.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s\n", got.Title)
	// Output:
	// Found note: Groceries
}

// Example_filter demonstrates the filter pipeline: text search, tag
// filtering, and sorting.
func Example_filter() {
	tmpDir, err := os.MkdirTemp("", "scrib-filter-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	vault, err := scrib.New(tmpDir, scrib.WithAutoInit(true))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if _, err := vault.Create(ctx, "Standup notes", "blocked on review", []string{"work"}); err != nil {
		log.Fatal(err)
	}
	if _, err := vault.Create(ctx, "Reading list", "The Go Programming Language", []string{"books"}); err != nil {
		log.Fatal(err)
	}

	// Case-insensitive text match, restricted to the "work" tag.
	notes, err := vault.List(ctx, core.Query{Text: "BLOCKED", Tags: []string{"work"}})
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range notes {
		fmt.Println(n.Title)
	}
	// Output:
	// Standup notes
}
