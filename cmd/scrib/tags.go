package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagsJSON bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with note counts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		tags, err := service.Tags(context.Background())
		if err != nil {
			fatal("Failed to list tags", err)
		}

		if tagsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(tags); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, tag := range tags {
			fmt.Printf("%s (%d)\n", tag.Name, tag.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output in JSON format")
}
