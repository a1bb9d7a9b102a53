package table

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchCandidates filters the compare picker by a case-insensitive name
// substring. An empty query matches everything.
func SearchCandidates(rows []Row, query string) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(rows)
	}

	var out []Row
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ID()), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSelected keeps the rows whose name is selected, in row order.
func FilterSelected(rows []Row, selected []string) []Row {
	var out []Row
	for _, r := range rows {
		if slices.Contains(selected, r.ID()) {
			out = append(out, r)
		}
	}
	return out
}

// Suggest ranks exchange names by fuzzy similarity to query, best first, for
// "did you mean" hints. At most limit names are returned.
func Suggest(names []string, query string, limit int) []string {
	q := strings.TrimSpace(query)
	if q == "" || limit <= 0 {
		return nil
	}

	// slug 形式的输入按空格匹配
	q = strings.ReplaceAll(q, "-", " ")

	var out []string
	for _, m := range fuzzy.Find(q, names) {
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
