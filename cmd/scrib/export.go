package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportStdout bool

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export all notes to a timestamped JSON file",
	Long: `Export writes the whole vault as a JSON array to a timestamped file
in the given directory (default: CWD). With --stdout the blob goes to
standard output instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx := context.Background()

		if exportStdout {
			if err := service.Export(ctx, os.Stdout); err != nil {
				fatal("Failed to export", err)
			}
			return
		}

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := service.ExportFile(ctx, dir)
		if err != nil {
			fatal("Failed to export", err)
		}

		fmt.Printf("Exported to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the export to stdout")
}
