package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scrib"
)

var (
	addContent string
	addTags    []string
	addStdin   bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a note",
	Long:  `Create a new note with the given title. Content comes from --content or, with --stdin, from standard input.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]

		content := addContent
		if addStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		service, _, err := newService(scrib.WithAutoInit(true))
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := service.Create(context.Background(), title, content, addTags)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Created %s (%s)\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.Flags().BoolVar(&addStdin, "stdin", false, "Read content from stdin")
}
