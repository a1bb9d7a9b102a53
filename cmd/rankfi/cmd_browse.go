package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/songzhibin97/rankfi/internal/table"
	"github.com/songzhibin97/rankfi/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	var filter, region string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the table interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.baseState(filter, region, 0)
			if err != nil {
				return err
			}

			exchanges, err := a.catalog.ByRegion(cmd.Context(), state.Region)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.New(table.NewRows(exchanges), state),
				tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "initial column set")
	cmd.Flags().StringVar(&region, "region", "", "region id")
	return cmd
}
