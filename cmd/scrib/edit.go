package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
	editTags    []string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  `Update a note's title, content, or tags. Fields not passed as flags keep their current value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx := context.Background()

		current, err := service.Get(ctx, id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		title := current.Title
		content := current.Content
		tags := current.Tags
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("content") {
			content = editContent
		}
		if cmd.Flags().Changed("tag") {
			tags = editTags
		}

		note, err := service.Update(ctx, id, title, content, tags)
		if err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Updated %s (%s)\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "New tag set (repeatable)")
}
