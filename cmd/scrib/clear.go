package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every note in the vault",
	Long:  `Clear removes all notes. It asks for confirmation unless --yes is passed.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !clearYes && !confirm("Delete ALL notes? This cannot be undone.") {
			fmt.Println("Aborted.")
			return
		}

		service, _, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := service.Clear(context.Background()); err != nil {
			fatal("Failed to clear vault", err)
		}

		fmt.Println("All notes deleted.")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation")
}
