package table

import "strconv"

const (
	// pages shown before the list collapses with ellipses
	maxPlainPages = 7

	ellipsisLabel = "..."
)

// PageToken is a page number or an ellipsis in the pager.
type PageToken struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (t PageToken) String() string {
	if t.Ellipsis {
		return ellipsisLabel
	}
	return strconv.Itoa(t.Page)
}

// PageCount is ceil(total / size); a non-positive size counts as one page.
func PageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// PageTokens lists the pager entries for a 1-based current page: every page
// up to seven, otherwise first, last and the current page's neighbours with
// ellipses over the gaps.
func PageTokens(totalPages, currentPage int) []PageToken {
	var tokens []PageToken
	if totalPages <= maxPlainPages {
		for i := 1; i <= totalPages; i++ {
			tokens = append(tokens, PageToken{Page: i})
		}
		return tokens
	}

	tokens = append(tokens, PageToken{Page: 1})
	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)
	if start > 2 {
		tokens = append(tokens, PageToken{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		tokens = append(tokens, PageToken{Page: i})
	}
	if end < totalPages-1 {
		tokens = append(tokens, PageToken{Ellipsis: true})
	}
	return append(tokens, PageToken{Page: totalPages})
}

// PageBounds returns the half-open slice [start, end) of a page.
func PageBounds(total, pageIndex, pageSize int) (int, int) {
	if pageIndex < 0 || pageSize <= 0 {
		return 0, 0
	}
	start := min(pageIndex*pageSize, total)
	end := min(start+pageSize, total)
	return start, end
}
