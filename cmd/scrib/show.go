package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showCopy bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show a note by its ID. Prints the raw content by default, the full JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := service.Get(context.Background(), id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if showCopy {
			if err := clipboard.WriteAll(note.Content); err != nil {
				fatal("Failed to copy to clipboard", err)
			}
			fmt.Fprintln(os.Stderr, "Copied to clipboard.")
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Print(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "Copy the note content to the clipboard")
}
