package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/songzhibin97/rankfi/internal/data/catalog"
	"github.com/songzhibin97/rankfi/internal/models"
	"github.com/songzhibin97/rankfi/internal/table"
)

func newPicksCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "picks",
		Short: "List the featured exchanges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			picks, err := a.catalog.TopPicks(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), picks)
			}

			all, err := a.catalog.All(cmd.Context())
			if err != nil {
				return err
			}
			return writeExchangeList(cmd, all, picks)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw records as JSON")
	return cmd
}

func writeExchangeList(cmd *cobra.Command, all, list []models.Exchange) error {
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.AppName
	}
	ranker := table.NewRanker(names)

	out := cmd.OutOrStdout()
	for _, e := range list {
		users := table.FormatCellValue(e.NumberOfUsers)
		if n := table.ParseCount(e.NumberOfUsers); n > 0 {
			users = humanize.Comma(n)
		}
		if _, err := fmt.Fprintf(out, "%-5s %-22s %-28s users: %s\n",
			humanize.Ordinal(ranker.Rank(e.AppName)), e.AppName, table.DetailPath(e.AppName), users); err != nil {
			return err
		}
	}
	return nil
}

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the supported regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, region := range catalog.Regions() {
				mark := " "
				if strings.EqualFold(region, a.config.Table.Region) {
					mark = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, region); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
