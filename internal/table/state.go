package table

import (
	"maps"
	"slices"
)

const (
	// MaxSelected caps how many exchanges can be compared at once.
	MaxSelected = 7

	DefaultPageSize = 25
	LoadMoreStep    = 10

	DefaultRegion = "global"
)

// PageSizes are the page sizes offered in the pager.
var PageSizes = []int{10, 25, 50}

// ViewState is everything the user controls about the table. Reducers return
// a new value and never modify the receiver.
type ViewState struct {
	Filter            Filter          `json:"filter"`
	CustomColumns     []string        `json:"custom_columns,omitempty"`
	Sort              SortSpec        `json:"sort"`
	PageIndex         int             `json:"page_index"`
	PageSize          int             `json:"page_size"`
	Hidden            map[string]bool `json:"hidden,omitempty"`
	Selected          []string        `json:"selected,omitempty"`
	Search            string          `json:"search,omitempty"`
	ComparisonApplied bool            `json:"comparison_applied"`
	DiscountEnabled   bool            `json:"discount_enabled"`
	Region            string          `json:"region"`
}

// DefaultViewState is the table as first shown: features, ranked ascending,
// 25 rows per page.
func DefaultViewState() ViewState {
	return ViewState{
		Filter:   FilterFeatures,
		Sort:     SortSpec{Key: RankKey},
		PageSize: DefaultPageSize,
		Region:   DefaultRegion,
	}
}

func (s ViewState) clone() ViewState {
	s.CustomColumns = slices.Clone(s.CustomColumns)
	s.Selected = slices.Clone(s.Selected)
	s.Hidden = maps.Clone(s.Hidden)
	return s
}

// SetFilter switches the column set and keeps the page index.
func (s ViewState) SetFilter(f Filter) ViewState {
	next := s.clone()
	next.Filter = f
	return next
}

// ToggleCustomColumn adds or removes a data column from the custom set.
func (s ViewState) ToggleCustomColumn(key string) ViewState {
	if key == NameKey || !slices.Contains(AllColumnKeys(), key) {
		return s
	}
	next := s.clone()
	if i := slices.Index(next.CustomColumns, key); i >= 0 {
		next.CustomColumns = slices.Delete(next.CustomColumns, i, i+1)
	} else {
		next.CustomColumns = append(next.CustomColumns, key)
	}
	return next
}

// ToggleSort sorts by key ascending, or flips to descending when key is
// already sorted ascending. There is no unsorted state.
func (s ViewState) ToggleSort(key string) ViewState {
	col, ok := ColumnByKey(key)
	if !ok || !col.Sortable {
		return s
	}
	next := s.clone()
	if s.Sort.Key == key && !s.Sort.Desc {
		next.Sort = SortSpec{Key: key, Desc: true}
	} else {
		next.Sort = SortSpec{Key: key}
	}
	return next
}

// SetPage moves to a 1-based page; out of range pages are ignored.
func (s ViewState) SetPage(page, totalPages int) ViewState {
	if page < 1 || page > totalPages {
		return s
	}
	next := s.clone()
	next.PageIndex = page - 1
	return next
}

func (s ViewState) NextPage(totalPages int) ViewState {
	return s.SetPage(s.PageIndex+2, totalPages)
}

func (s ViewState) PrevPage() ViewState {
	return s.SetPage(s.PageIndex, s.PageIndex)
}

// SetPageSize changes the page size and returns to the first page.
func (s ViewState) SetPageSize(size int) ViewState {
	if size <= 0 {
		return s
	}
	next := s.clone()
	next.PageSize = size
	next.PageIndex = 0
	return next
}

// LoadMore grows the page by LoadMoreStep rows, up to totalRows. It does
// nothing while a comparison is shown.
func (s ViewState) LoadMore(totalRows int) ViewState {
	if s.ComparisonApplied || s.PageSize >= totalRows {
		return s
	}
	next := s.clone()
	next.PageSize = min(s.PageSize+LoadMoreStep, totalRows)
	return next
}

func (s ViewState) IsSelected(name string) bool {
	return slices.Contains(s.Selected, name)
}

// ToggleSelection flips a row in the compare selection. Adding beyond
// MaxSelected is a no-op.
func (s ViewState) ToggleSelection(name string) ViewState {
	next := s.clone()
	if i := slices.Index(next.Selected, name); i >= 0 {
		next.Selected = slices.Delete(next.Selected, i, i+1)
		return next
	}
	if len(s.Selected) >= MaxSelected {
		return s
	}
	next.Selected = append(next.Selected, name)
	return next
}

// ApplyComparison restricts the table to the selection. Without a selection
// nothing changes.
func (s ViewState) ApplyComparison() ViewState {
	if len(s.Selected) == 0 {
		return s
	}
	next := s.clone()
	next.ComparisonApplied = true
	next.PageIndex = 0
	return next
}

// ClearComparison leaves compare mode, empties the selection and returns to
// the first page.
func (s ViewState) ClearComparison() ViewState {
	next := s.clone()
	next.ComparisonApplied = false
	next.Selected = nil
	next.PageIndex = 0
	return next
}

// SetSearch sets the picker search text.
func (s ViewState) SetSearch(q string) ViewState {
	next := s.clone()
	next.Search = q
	return next
}

// ToggleColumn hides or shows a column. Name and website stay visible.
func (s ViewState) ToggleColumn(key string) ViewState {
	col, ok := ColumnByKey(key)
	if !ok || !col.Hideable {
		return s
	}
	next := s.clone()
	if next.Hidden == nil {
		next.Hidden = make(map[string]bool)
	}
	if next.Hidden[key] {
		delete(next.Hidden, key)
	} else {
		next.Hidden[key] = true
	}
	return next
}

func (s ViewState) ShowAllColumns() ViewState {
	next := s.clone()
	next.Hidden = nil
	return next
}

func (s ViewState) ToggleDiscount() ViewState {
	next := s.clone()
	next.DiscountEnabled = !s.DiscountEnabled
	return next
}

func (s ViewState) SetRegion(region string) ViewState {
	next := s.clone()
	next.Region = region
	return next
}
