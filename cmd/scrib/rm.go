package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note from the vault",
	Long:  `Rm permanently deletes one note. It asks for confirmation unless --yes is passed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		if !rmYes && !confirm(fmt.Sprintf("Delete note %s? This cannot be undone.", id)) {
			fmt.Println("Aborted.")
			return
		}

		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := service.Delete(context.Background(), id); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip confirmation")
}
