package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/tui/explorer"
)

func newExploreCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := explorer.NewModel(app.catalog)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("explorer failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
