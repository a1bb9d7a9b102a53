package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/render"
	"github.com/songzhibin97/rankfi/internal/table"
)

const maxSuggestions = 3

func newShowCmd(a *app) *cobra.Command {
	var (
		style    string
		width    int
		discount bool
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show every field of one exchange",
		Long: `Show the detail page of one exchange, addressed by the slug of its
detail path, eg: rankfi show kraken-pro`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			slug := args[0]

			e, err := a.catalog.BySlug(ctx, slug)
			if errors.Is(err, data.ErrNotFound) {
				return a.notFound(cmd, slug, err)
			}
			if err != nil {
				return err
			}

			all, err := a.catalog.All(ctx)
			if err != nil {
				return err
			}
			var row table.Row
			for _, r := range table.NewRows(all) {
				if r.ID() == e.AppName {
					row = r
					break
				}
			}

			discount = discount || a.config.Table.Discount
			if markdown {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.DetailMarkdown(row, discount))
				return err
			}

			out, err := render.Detail(row, discount, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty...), default from terminal")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width")
	cmd.Flags().BoolVar(&discount, "discount", false, "apply the RankFi fee discount")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the raw markdown")
	return cmd
}

func (a *app) notFound(cmd *cobra.Command, slug string, cause error) error {
	all, err := a.catalog.All(cmd.Context())
	if err != nil {
		return cause
	}
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.AppName
	}

	suggestions := table.Suggest(names, slug, maxSuggestions)
	if len(suggestions) == 0 {
		return cause
	}
	slugs := make([]string, len(suggestions))
	for i, name := range suggestions {
		slugs[i] = table.Slug(name)
	}
	return fmt.Errorf("%w (did you mean: %s?)", cause, strings.Join(slugs, ", "))
}
