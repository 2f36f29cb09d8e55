package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"scrib"
	"scrib/internal/platform"
	"scrib/pkg/core"
)

var (
	vaultFlag string
	readOnly  bool
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrib",
	Short: "A single-page note vault with tags, search, and a published read-only mode",
	Long: `Scrib keeps your notes in a single JSON blob, written atomically.
Filter by text and tags, sort the list, and publish a read-only snapshot
that other scrib instances can browse.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default: nearest vault root, else CWD)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Reject every mutation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// resolveVault picks the vault directory: --vault flag, else the nearest
// vault root above CWD, else CWD itself.
func resolveVault() (string, error) {
	if vaultFlag != "" {
		return vaultFlag, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	if root, err := scrib.FindVaultRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// loadConfig resolves the vault directory and its effective configuration,
// with command-line flags taking precedence.
func loadConfig() (platform.Config, string, error) {
	dir, err := resolveVault()
	if err != nil {
		return platform.Config{}, "", err
	}

	cfg, err := platform.LoadConfig(dir)
	if err != nil {
		return cfg, dir, err
	}

	if readOnly {
		cfg.ReadOnly = true
	}
	return cfg, dir, nil
}

// newService wires a note service for the resolved vault.
// Published mode (snapshot URL configured) always opens read-only.
func newService(extra ...scrib.Option) (*core.Service, platform.Config, error) {
	cfg, dir, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	opts := []scrib.Option{
		scrib.WithLogger(slog.Default()),
		scrib.WithReadOnly(cfg.ReadOnly),
	}
	if cfg.SnapshotURL != "" {
		opts = append(opts, scrib.WithSnapshot(cfg.SnapshotURL))
	}
	opts = append(opts, extra...)

	svc, err := scrib.New(dir, opts...)
	if err != nil {
		return nil, cfg, err
	}
	return svc, cfg, nil
}
