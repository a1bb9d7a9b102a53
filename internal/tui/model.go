package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/songzhibin97/rankfi/internal/render"
	"github.com/songzhibin97/rankfi/internal/table"
)

const maxCandidates = 8

const helpText = "tab filter · ←/→ page · ↑/↓ row · </> column · s sort · x hide · a show all · " +
	"space select · c compare · / find · d discount · m more · +/- page size · q quit"

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
)

// Model is a bubbletea program over the comparison table. Every key maps to
// one ViewState reducer.
type Model struct {
	rows  []table.Row
	state table.ViewState

	cursor int // row within the current page
	column int // index into the visible columns

	search    textinput.Model
	searching bool

	status   string
	quitting bool
}

func New(rows []table.Row, state table.ViewState) Model {
	ti := textinput.New()
	ti.Placeholder = "exchange name"
	ti.CharLimit = 64

	return Model{
		rows:   rows,
		state:  state,
		column: 1,
		search: ti,
	}
}

// State is the current view state.
func (m Model) State() table.ViewState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) page() table.Page {
	return table.Compute(m.rows, m.state)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searching {
		return m.updateSearch(key)
	}

	m.status = ""
	page := m.page()

	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.state = m.state.SetFilter(cycle(table.Filters(), m.state.Filter, 1))
		m.column = 1
	case "shift+tab":
		m.state = m.state.SetFilter(cycle(table.Filters(), m.state.Filter, -1))
		m.column = 1

	case "right", "l":
		m.state = m.state.NextPage(page.TotalPages)
		m.cursor = 0
	case "left", "h":
		m.state = m.state.PrevPage()
		m.cursor = 0

	case "down", "j":
		if m.cursor < len(page.Rows)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case ">", ".":
		if m.column < len(page.Columns)-1 {
			m.column++
		}
	case "<", ",":
		if m.column > 0 {
			m.column--
		}

	case "s":
		if col, ok := m.currentColumn(page); ok {
			m.state = m.state.ToggleSort(col.Key)
		}
	case "x":
		if col, ok := m.currentColumn(page); ok {
			m.state = m.state.ToggleColumn(col.Key)
		}
	case "a":
		m.state = m.state.ShowAllColumns()

	case " ":
		if m.cursor < len(page.Rows) {
			m.toggleSelection(page.Rows[m.cursor].ID)
		}
	case "c":
		if m.state.ComparisonApplied {
			m.state = m.state.ClearComparison()
		} else if len(m.state.Selected) == 0 {
			m.status = "select exchanges with space or / first"
		} else {
			m.state = m.state.ApplyComparison()
		}
		m.cursor = 0

	case "d":
		m.state = m.state.ToggleDiscount()
	case "m":
		m.state = m.state.LoadMore(page.TotalRows)
	case "+", "=":
		m.state = m.state.SetPageSize(nextPageSize(m.state.PageSize, 1))
		m.cursor = 0
	case "-":
		m.state = m.state.SetPageSize(nextPageSize(m.state.PageSize, -1))
		m.cursor = 0

	case "/":
		m.searching = true
		m.search.SetValue(m.state.Search)
		cmd := m.search.Focus()
		return m, cmd
	}

	m.clampCursors()
	return m, nil
}

func (m Model) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		if candidates := table.SearchCandidates(m.rows, m.state.Search); len(candidates) > 0 {
			m.toggleSelection(candidates[0].ID())
		}
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.state = m.state.SetSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	m.state = m.state.SetSearch(m.search.Value())
	return m, cmd
}

func (m *Model) toggleSelection(id string) {
	next := m.state.ToggleSelection(id)
	if !next.IsSelected(id) && !m.state.IsSelected(id) {
		m.status = fmt.Sprintf("you can compare at most %d exchanges", table.MaxSelected)
		return
	}
	m.state = next
}

func (m Model) currentColumn(page table.Page) (table.Column, bool) {
	if m.column < 0 || m.column >= len(page.Columns) {
		return table.Column{}, false
	}
	return page.Columns[m.column], true
}

func (m *Model) clampCursors() {
	page := m.page()
	m.cursor = max(0, min(m.cursor, len(page.Rows)-1))
	m.column = max(0, min(m.column, len(page.Columns)-1))
}

func cycle(filters []table.Filter, current table.Filter, step int) table.Filter {
	i := slices.Index(filters, current)
	n := len(filters)
	return filters[((i+step)%n+n)%n]
}

func nextPageSize(current, step int) int {
	sizes := table.PageSizes
	i := slices.Index(sizes, current)
	if i < 0 {
		// load more 之后的非标准大小
		i, _ = slices.BinarySearch(sizes, current)
		if step > 0 {
			i--
		}
	}
	i = max(0, min(i+step, len(sizes)-1))
	return sizes[i]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	page := m.page()

	var b strings.Builder
	b.WriteString(render.View(m.state.Filter, page))
	b.WriteString("\n")

	if col, ok := m.currentColumn(page); ok && m.cursor < len(page.Rows) {
		b.WriteString(cursorStyle.Render(fmt.Sprintf("▶ %s · %s", page.Rows[m.cursor].ID, col.Label)))
		b.WriteString("\n")
	}

	if len(m.state.Selected) > 0 {
		fmt.Fprintf(&b, "Selected (%d/%d): %s\n", len(m.state.Selected), table.MaxSelected, strings.Join(m.state.Selected, ", "))
	}
	if m.state.DiscountEnabled {
		b.WriteString("RankFi discount applied to fees\n")
	}

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		candidates := table.SearchCandidates(m.rows, m.state.Search)
		for i, r := range candidates {
			if i == maxCandidates {
				fmt.Fprintf(&b, "  … %d more\n", len(candidates)-maxCandidates)
				break
			}
			mark := " "
			if m.state.IsSelected(r.ID()) {
				mark = "✓"
			}
			fmt.Fprintf(&b, "  %s %s\n", mark, r.ID())
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}
