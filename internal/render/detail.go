package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/songzhibin97/rankfi/internal/table"
)

// DetailMarkdown describes one exchange as markdown: a heading, its links
// and one table per preset filter.
func DetailMarkdown(row table.Row, discount bool) string {
	e := row.Exchange

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.AppName)
	fmt.Fprintf(&b, "Rank **#%d** · `%s`", row.Rank, table.DetailPath(e.AppName))
	if e.Website != "" {
		fmt.Fprintf(&b, " · [Website](%s)", e.Website)
	}
	b.WriteString("\n")

	for _, f := range table.PresetFilters() {
		fmt.Fprintf(&b, "\n## %s\n\n| | |\n|---|---|\n", f.Label())
		for _, col := range table.Definitions(f) {
			if col.Kind == table.KindName {
				continue
			}
			cell := table.RenderCell(col, row, discount)
			fmt.Fprintf(&b, "| %s | %s |\n", col.Label, escapeCell(detailText(col, cell)))
		}
	}

	if links := incidentLinks(row, discount); len(links) > 0 {
		b.WriteString("\n## Incident reports\n\n")
		for _, l := range links {
			b.WriteString("- " + l + "\n")
		}
	}

	return b.String()
}

func detailText(col table.Column, cell table.Cell) string {
	text := CellText(table.Column{Kind: col.Kind}, cell, false)
	if col.Kind == table.KindFiatList && len(cell.Currencies) > 0 {
		names := make([]string, len(cell.Currencies))
		for i, c := range cell.Currencies {
			names[i] = c.Flag + " " + c.Name
		}
		text = cell.Text + ": " + strings.Join(names, ", ")
	}
	if col.Kind == table.KindLinkToggle && cell.Link != "" {
		text = fmt.Sprintf("[%s](%s)", text, cell.Link)
	}
	return text
}

func incidentLinks(row table.Row, discount bool) []string {
	var out []string
	for _, key := range []string{"hacks_or_incidents", "other_incidents"} {
		col, ok := table.ColumnByKey(key)
		if !ok {
			continue
		}
		for _, badge := range table.RenderCell(col, row, discount).Badges {
			if badge.URL != "" {
				out = append(out, fmt.Sprintf("%s %s: %s", col.Label, badge.Label, badge.URL))
			}
		}
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Detail renders DetailMarkdown for the terminal. An empty style picks the
// style from the terminal background.
func Detail(row table.Row, discount bool, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(DetailMarkdown(row, discount))
	if err != nil {
		return "", fmt.Errorf("failed to render detail: %w", err)
	}
	return out, nil
}
