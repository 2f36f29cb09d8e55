package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"scrib"
	"scrib/internal/publish"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only snapshot of the vault over HTTP",
	Long: `Serve publishes the vault as static JSON: /notes.json (with optional
q, tag, and sort query parameters), /tags.json, and /health. Another scrib
instance can browse the published copy via its snapshot URL.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := newService(scrib.WithMustExist(true))
		if err != nil {
			fatal("Failed to open vault", err)
		}

		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := publish.Serve(ctx, addr, service, slog.Default()); err != nil {
			fatal("Publish server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8787", "Listen address")
}
