package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrib"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scrib",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scrib version %s\n", scrib.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
