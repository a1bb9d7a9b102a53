package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/songzhibin97/rankfi/internal/render"
	"github.com/songzhibin97/rankfi/internal/table"
)

type tableOptions struct {
	filter   string
	columns  []string
	sort     string
	desc     bool
	page     int
	pageSize int
	loadMore int
	discount bool
	compare  []string
	hide     []string
	region   string
	json     bool
}

func newTableCmd(a *app) *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the comparison table",
		Long: `Print one page of the comparison table.

Examples:
  rankfi table --filter fees --discount
  rankfi table --sort coins --desc --page-size 10 --page 2
  rankfi table --filter custom --columns maker_fee,coins,kyc
  rankfi table --compare kraken,bybit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.filter, "filter", "", "column set: features, fees, security or custom")
	f.StringSliceVar(&opts.columns, "columns", nil, "columns of the custom filter")
	f.StringVar(&opts.sort, "sort", "", "sort column key")
	f.BoolVar(&opts.desc, "desc", false, "sort descending")
	f.IntVar(&opts.page, "page", 1, "1-based page number")
	f.IntVar(&opts.pageSize, "page-size", 0, "rows per page (10, 25 or 50)")
	f.IntVar(&opts.loadMore, "load-more", 0, "press load more this many times")
	f.BoolVar(&opts.discount, "discount", false, "apply the RankFi fee discount")
	f.StringSliceVar(&opts.compare, "compare", nil, "exchanges to compare, matched by name")
	f.StringSliceVar(&opts.hide, "hide", nil, "column keys to hide")
	f.StringVar(&opts.region, "region", "", "region id, see 'rankfi regions'")
	f.BoolVar(&opts.json, "json", false, "print the computed page as JSON")
	return cmd
}

func (a *app) runTable(cmd *cobra.Command, opts *tableOptions) error {
	state, err := a.baseState(opts.filter, opts.region, opts.pageSize)
	if err != nil {
		return err
	}
	if opts.discount {
		state = state.ToggleDiscount()
	}

	exchanges, err := a.catalog.ByRegion(cmd.Context(), state.Region)
	if err != nil {
		return err
	}
	rows := table.NewRows(exchanges)

	state, err = applyTableOptions(state, rows, opts)
	if err != nil {
		return err
	}

	page := table.Compute(rows, state)
	log.Debug("computed page", "source", a.catalog.Source(), "rows", page.TotalRows, "page", page.PageIndex+1)

	if opts.json {
		return writeJSON(cmd.OutOrStdout(), page)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.View(state.Filter, page))
	return err
}

// baseState builds the configured default view, overridden by flags.
func (a *app) baseState(filter, region string, pageSize int) (table.ViewState, error) {
	state := table.DefaultViewState()

	if filter == "" {
		filter = a.config.Table.Filter
	}
	f, err := table.ParseFilter(filter)
	if err != nil {
		return state, err
	}
	state = state.SetFilter(f)

	if pageSize <= 0 {
		pageSize = a.config.Table.PageSize
	}
	state = state.SetPageSize(pageSize)

	if region == "" {
		region = a.config.Table.Region
	}
	state = state.SetRegion(region)

	if a.config.Table.Discount {
		state = state.ToggleDiscount()
	}
	return state, nil
}

func applyTableOptions(state table.ViewState, rows []table.Row, opts *tableOptions) (table.ViewState, error) {
	for _, key := range opts.columns {
		if _, ok := table.ColumnByKey(key); !ok {
			return state, fmt.Errorf("unknown column: %q", key)
		}
		state = state.ToggleCustomColumn(key)
	}

	if opts.sort != "" {
		if state.Sort.Key != opts.sort {
			state = state.ToggleSort(opts.sort)
		}
		if state.Sort.Key != opts.sort {
			return state, fmt.Errorf("column %q is not sortable", opts.sort)
		}
		if state.Sort.Desc != opts.desc {
			state = state.ToggleSort(opts.sort)
		}
	} else if opts.desc {
		state = state.ToggleSort(state.Sort.Key)
	}

	for _, key := range opts.hide {
		state = state.ToggleColumn(key)
	}

	for _, query := range opts.compare {
		id, ok := resolveName(rows, query)
		if !ok {
			return state, fmt.Errorf("no exchange matches %q", query)
		}
		if !state.IsSelected(id) {
			next := state.ToggleSelection(id)
			if !next.IsSelected(id) {
				return state, fmt.Errorf("at most %d exchanges can be compared", table.MaxSelected)
			}
			state = next
		}
	}
	if len(opts.compare) > 0 {
		state = state.ApplyComparison()
	}

	for i := 0; i < opts.loadMore; i++ {
		state = state.LoadMore(len(rows))
	}

	if opts.page > 1 {
		totalPages := table.Compute(rows, state).TotalPages
		if opts.page > totalPages {
			return state, fmt.Errorf("page %d out of range (1-%d)", opts.page, totalPages)
		}
		state = state.SetPage(opts.page, totalPages)
	}
	return state, nil
}

// resolveName picks the exchange a query names: an exact match if there is
// one, otherwise the first search candidate.
func resolveName(rows []table.Row, query string) (string, bool) {
	candidates := table.SearchCandidates(rows, query)
	if len(candidates) == 0 {
		return "", false
	}
	for _, r := range candidates {
		if strings.EqualFold(r.ID(), strings.TrimSpace(query)) {
			return r.ID(), true
		}
	}
	return candidates[0].ID(), true
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
