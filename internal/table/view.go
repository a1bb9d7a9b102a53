package table

import (
	"strconv"
	"strings"

	"github.com/songzhibin97/rankfi/internal/models"
)

const (
	websiteLabel   = "Visit →"
	noWebsiteLabel = "—"
)

// Cell is the derived display value of one column for one row.
type Cell struct {
	Key        string     `json:"key"`
	Text       string     `json:"text"`
	Rank       int        `json:"rank,omitempty"`
	Link       string     `json:"link,omitempty"`
	Logo       string     `json:"logo,omitempty"`
	Color      string     `json:"color,omitempty"`
	Badges     []Badge    `json:"badges,omitempty"`
	Currencies []Currency `json:"currencies,omitempty"`
	Spread     bool       `json:"spread,omitempty"`
	Toggle     bool       `json:"toggle,omitempty"`
}

// RenderedRow 当前页的一行
type RenderedRow struct {
	ID       string           `json:"id"`
	Rank     int              `json:"rank"`
	Selected bool             `json:"selected"`
	Exchange *models.Exchange `json:"-"`
	Cells    []Cell           `json:"cells"`
}

// Page is the table as it should be drawn for one ViewState.
type Page struct {
	Columns           []Column      `json:"columns"`
	Rows              []RenderedRow `json:"rows"`
	TotalRows         int           `json:"total_rows"`
	TotalPages        int           `json:"total_pages"`
	PageIndex         int           `json:"page_index"`
	PageSize          int           `json:"page_size"`
	Start             int           `json:"start"`
	End               int           `json:"end"`
	Tokens            []PageToken   `json:"tokens"`
	Sort              SortSpec      `json:"sort"`
	ComparisonApplied bool          `json:"comparison_applied"`
}

// Compute runs the whole pipeline: comparison filter, sort, pagination and
// cell rendering. While a comparison is applied every selected row is shown
// on a single page.
func Compute(rows []Row, state ViewState) Page {
	working := rows
	comparing := state.ComparisonApplied && len(state.Selected) > 0
	if comparing {
		working = FilterSelected(rows, state.Selected)
	}
	sorted := SortRows(working, state.Sort)
	total := len(sorted)

	page := Page{
		Columns:           Visible(Columns(state.Filter, state.CustomColumns), state.Hidden),
		TotalRows:         total,
		Sort:              state.Sort,
		ComparisonApplied: comparing,
	}

	var visible []Row
	if comparing {
		visible = sorted
		page.PageSize = total
		page.TotalPages = PageCount(total, total)
	} else {
		page.PageSize = state.PageSize
		page.TotalPages = PageCount(total, state.PageSize)
		page.PageIndex = clampPage(state.PageIndex, page.TotalPages)
		start, end := PageBounds(total, page.PageIndex, state.PageSize)
		visible = sorted[start:end]
	}

	if len(visible) > 0 {
		page.Start = page.PageIndex*page.PageSize + 1
		page.End = page.Start + len(visible) - 1
	}
	page.Tokens = PageTokens(page.TotalPages, page.PageIndex+1)

	page.Rows = make([]RenderedRow, 0, len(visible))
	for _, r := range visible {
		rendered := RenderedRow{
			ID:       r.ID(),
			Rank:     r.Rank,
			Selected: state.IsSelected(r.ID()),
			Exchange: r.Exchange,
			Cells:    make([]Cell, 0, len(page.Columns)),
		}
		for _, col := range page.Columns {
			rendered.Cells = append(rendered.Cells, RenderCell(col, r, state.DiscountEnabled))
		}
		page.Rows = append(page.Rows, rendered)
	}
	return page
}

func clampPage(idx, totalPages int) int {
	if totalPages == 0 || idx < 0 {
		return 0
	}
	return min(idx, totalPages-1)
}

// RenderCell derives a single cell. discount applies the exchange's RankFi
// discount to fee columns.
func RenderCell(col Column, r Row, discount bool) Cell {
	e := r.Exchange
	raw := e.Field(col.Key)
	cell := Cell{Key: col.Key}

	switch col.Kind {
	case KindRank:
		cell.Rank = r.Rank
		cell.Text = strconv.Itoa(r.Rank)

	case KindName:
		cell.Text = e.AppName
		cell.Link = DetailPath(e.AppName)
		cell.Logo = e.LogoURL
		if cell.Logo == "" {
			cell.Color = PlaceholderColor(e.AppName)
		}

	case KindBoolean:
		cell.Text = FormatFlag(raw)

	case KindFee:
		cell.Text = FormatCellValue(raw)
		if discount && !e.RankfiDiscount.IsEmpty() {
			cell.Text = ApplyDiscount(cell.Text, e.RankfiDiscount.String())
		}
		cell.Spread = (col.Key == "maker_fee" || col.Key == "taker_fee") &&
			e.UsesSpreadFee.Flag() == models.FlagYes

	case KindDiscount:
		cell.Toggle = discount
		if raw.IsMissing() {
			cell.Text = notAvailable
		} else {
			cell.Text = raw.String() + " Discount"
		}

	case KindIncidentList:
		value := raw.String()
		if raw.IsEmpty() {
			value = "No"
		}
		urls := e.HacksOrIncidentsURL
		if col.Key == "other_incidents" {
			urls = e.OtherIncidentsURL
		}
		cell.Badges = IncidentBadges(value, urls)
		if len(cell.Badges) == 0 {
			cell.Text = "No"
		} else {
			labels := make([]string, len(cell.Badges))
			for i, b := range cell.Badges {
				labels[i] = b.Label
			}
			cell.Text = strings.Join(labels, ", ")
		}

	case KindLinkToggle:
		cell.Text = FormatFlag(raw)
		switch col.Key {
		case "proof_of_reserves":
			if raw.Flag() == models.FlagYes {
				cell.Link = e.ProofOfReservesURL
			}
		case "insurance_policy":
			if !raw.IsMissing() && raw.Flag() != models.FlagNo {
				cell.Link = e.InsurancePolicyURL
			}
		}

	case KindFiatList:
		cell.Text = FormatCellValue(raw)
		cell.Currencies = Currencies(e.FiatCurrencyCodes)

	case KindWebsite:
		if e.Website == "" {
			cell.Text = noWebsiteLabel
		} else {
			cell.Text = websiteLabel
			cell.Link = e.Website
		}

	default:
		cell.Text = FormatCellValue(raw)
	}

	return cell
}
