package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"scrib"
	"scrib/internal/tui"
	"scrib/pkg/core"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit notes in the terminal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, cfg, err := newService(scrib.WithAutoInit(true))
		if err != nil {
			fatal("Failed to open vault", err)
		}

		readOnly := cfg.ReadOnly || cfg.SnapshotURL != ""
		app := tui.NewApp(service, readOnly, core.ParseSortMode(cfg.Sort))

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal("TUI failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
