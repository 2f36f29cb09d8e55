package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrib"
)

var importYes bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the vault with notes from a JSON file",
	Long: `Import reads a JSON array of notes and replaces the whole vault with it.
The existing notes are discarded. If the file is not a valid JSON array,
the vault is left untouched. Use "-" to read from stdin.

Import asks for confirmation unless --yes is passed. When reading from
stdin the prompt cannot be answered, so --yes is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fromStdin := args[0] == "-"
		if !importYes {
			// Stdin carries the import data, so there is nothing left
			// to read the answer from.
			if fromStdin {
				fatal("Import from stdin replaces the whole vault", fmt.Errorf("pass --yes to confirm"))
			}
			if !confirm(fmt.Sprintf("Replace ALL notes with the contents of %s? This cannot be undone.", args[0])) {
				fmt.Println("Aborted.")
				return
			}
		}

		service, _, err := newService(scrib.WithAutoInit(true))
		if err != nil {
			fatal("Failed to open vault", err)
		}

		in := os.Stdin
		if !fromStdin {
			f, err := os.Open(args[0])
			if err != nil {
				fatal("Failed to open import file", err)
			}
			defer f.Close()
			in = f
		}

		count, err := service.Import(context.Background(), in)
		if err != nil {
			fatal("Failed to import", err)
		}

		fmt.Printf("Imported %d notes.\n", count)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip confirmation")
}
