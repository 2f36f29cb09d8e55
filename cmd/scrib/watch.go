package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"scrib"
	scriblifecycle "scrib/pkg/adapters/lifecycle"
)

var watchPattern string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and print note change events",
	Long: `Watch follows the store blob on disk and prints one line per
note-level change (CREATE, MODIFY, DELETE) until interrupted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, err := newService(scrib.WithMustExist(true))
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		source := scriblifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching for changes. Ctrl+C to stop.")
		for event := range source.Events() {
			fmt.Printf("%s %s\n", time.Now().Format(time.RFC3339), event)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "", "File glob to watch (default: the store blob)")
}
