package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/songzhibin97/rankfi/internal/table"
)

// pixel widths from the column definitions map to roughly 8px per cell
const pxPerChar = 8

var (
	accent = lipgloss.Color("#3B82F6")
	muted  = lipgloss.Color("#6B7280")

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = cellStyle.Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1)
	tabStyle      = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
)

// Table draws a computed page as a bordered terminal table.
func Table(page table.Page) string {
	headers := make([]string, len(page.Columns))
	for i, c := range page.Columns {
		headers[i] = headerLabel(c, page.Sort)
	}

	rows := make([][]string, len(page.Rows))
	for i, r := range page.Rows {
		row := make([]string, len(r.Cells))
		for j, cell := range r.Cells {
			row[j] = CellText(page.Columns[j], cell, r.Selected)
		}
		rows[i] = row
	}

	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(page.Rows) && page.Rows[row].Selected {
				return selectedStyle
			}
			return cellStyle
		})

	return t.String()
}

func headerLabel(c table.Column, sort table.SortSpec) string {
	if c.Key != sort.Key {
		return c.Label
	}
	if sort.Desc {
		return c.Label + " ↓"
	}
	return c.Label + " ↑"
}

// CellText flattens a cell into the text shown in a terminal.
func CellText(col table.Column, cell table.Cell, selected bool) string {
	text := cell.Text

	switch col.Kind {
	case table.KindName:
		if selected {
			text = "● " + text
		}
	case table.KindFee:
		if cell.Spread {
			text += " +spread"
		}
	case table.KindDiscount:
		if cell.Toggle {
			text += " ✓"
		}
	case table.KindFiatList:
		if len(cell.Currencies) > 0 {
			codes := make([]string, len(cell.Currencies))
			for i, c := range cell.Currencies {
				codes[i] = c.Code
			}
			text += " (" + strings.Join(codes, ", ") + ")"
		}
	}

	if col.Truncate && col.MaxSize > 0 {
		text = truncate(text, col.MaxSize/pxPerChar)
	}
	return text
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// Pager draws the "Showing x-y of n" line and the page token strip.
func Pager(page table.Page) string {
	if page.TotalRows == 0 {
		return mutedStyle.Render("No exchanges")
	}

	summary := fmt.Sprintf("Showing %s-%s of %s",
		humanize.Comma(int64(page.Start)), humanize.Comma(int64(page.End)), humanize.Comma(int64(page.TotalRows)))
	if page.ComparisonApplied {
		return summary + mutedStyle.Render(" · comparing")
	}

	parts := make([]string, len(page.Tokens))
	for i, tok := range page.Tokens {
		if !tok.Ellipsis && tok.Page == page.PageIndex+1 {
			parts[i] = activeStyle.Render(tok.String())
			continue
		}
		parts[i] = tabStyle.Render(tok.String())
	}
	return summary + "  " + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Tabs draws the filter tab bar with the active filter highlighted.
func Tabs(active table.Filter) string {
	filters := table.Filters()
	parts := make([]string, len(filters))
	for i, f := range filters {
		if f == active {
			parts[i] = activeStyle.Render(f.Label())
			continue
		}
		parts[i] = tabStyle.Render(f.Label())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// View stacks tabs, table and pager.
func View(filter table.Filter, page table.Page) string {
	return lipgloss.JoinVertical(lipgloss.Left, Tabs(filter), Table(page), Pager(page))
}
