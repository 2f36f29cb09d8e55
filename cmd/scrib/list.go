package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scrib/pkg/core"
)

var (
	listJSON  bool
	listQuery string
	listTags  []string
	listSort  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		sortMode := cfg.Sort
		if cmd.Flags().Changed("sort") {
			sortMode = listSort
		}

		notes, err := service.List(context.Background(), core.Query{
			Text: listQuery,
			Tags: listTags,
			Sort: core.ParseSortMode(sortMode),
		})
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			line := fmt.Sprintf("%s  %s", note.ID, note.Title)
			if len(note.Tags) > 0 {
				line += "  #" + strings.Join(note.Tags, " #")
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive text filter")
	listCmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Tag filter, may be a glob (repeatable)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort order: updated, created, or title")
}
