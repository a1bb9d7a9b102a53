package table

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/songzhibin97/rankfi/internal/models"
)

var (
	incidentKeys = map[string]bool{
		"hacks_or_incidents": true,
		"other_incidents":    true,
	}

	countKeys = map[string]bool{
		"coins":             true,
		"number_of_futures": true,
		"max_leverage":      true,
		"margin_spot":       true,
		"founded":           true,
		"fiat_currencies":   true,
		"number_of_users":   true,
	}

	feeKeys = map[string]bool{
		"maker_fee":         true,
		"taker_fee":         true,
		"futures_maker_fee": true,
		"futures_taker_fee": true,
	}

	booleanKeys = map[string]bool{
		"copy_trading":      true,
		"trading_bots":      true,
		"p2p_trading":       true,
		"staking_or_earn":   true,
		"mobile_app":        true,
		"247_support":       true,
		"proof_of_reserves": true,
		"uses_cold_storage": true,
		"insurance_policy":  true,
		"2fa":               true,
		"publicly_traded":   true,
		"uses_spread_fee":   true,
	}
)

type sortCategory int

const (
	categoryString sortCategory = iota
	categoryRank
	categoryIncident
	categoryCount
	categoryFee
	categoryBoolean
)

func categoryOf(key string) sortCategory {
	switch {
	case key == RankKey:
		return categoryRank
	case incidentKeys[key]:
		return categoryIncident
	case countKeys[key]:
		return categoryCount
	case feeKeys[key]:
		return categoryFee
	case booleanKeys[key]:
		return categoryBoolean
	default:
		return categoryString
	}
}

// Direction 排序方向
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

// SortSpec is the active sort column.
type SortSpec struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

func (s SortSpec) Direction() Direction {
	if s.Desc {
		return Desc
	}
	return Asc
}

type sortKey struct {
	missing bool
	num     float64
	text    string
}

// Row is an exchange with its rank and sort keys resolved once at load.
type Row struct {
	Exchange *models.Exchange
	Rank     int

	keys map[string]sortKey
}

// ID is the row identifier used for selection.
func (r Row) ID() string {
	return r.Exchange.AppName
}

// NewRows normalizes a dataset into rows. The input is not modified.
func NewRows(exchanges []models.Exchange) []Row {
	names := make([]string, len(exchanges))
	for i := range exchanges {
		names[i] = exchanges[i].AppName
	}
	ranker := NewRanker(names)

	sortable := append([]string{NameKey}, AllColumnKeys()...)

	rows := make([]Row, len(exchanges))
	for i := range exchanges {
		e := &exchanges[i]
		row := Row{
			Exchange: e,
			Rank:     ranker.Rank(e.AppName),
			keys:     make(map[string]sortKey, len(sortable)+1),
		}
		row.keys[RankKey] = sortKey{num: float64(row.Rank)}
		for _, key := range sortable {
			row.keys[key] = resolveKey(e, key)
		}
		rows[i] = row
	}
	return rows
}

func resolveKey(e *models.Exchange, key string) sortKey {
	raw := e.Field(key)
	if raw.IsMissing() {
		return sortKey{missing: true}
	}

	switch categoryOf(key) {
	case categoryIncident:
		return sortKey{num: float64(IncidentYear(raw))}
	case categoryCount:
		return sortKey{num: float64(ParseCount(raw))}
	case categoryFee:
		return sortKey{num: ParseFee(raw)}
	case categoryBoolean:
		switch raw.Flag() {
		case models.FlagYes:
			return sortKey{num: 1}
		case models.FlagNo:
			return sortKey{num: 0}
		default:
			// not a boolean, shown as N/A
			return sortKey{missing: true}
		}
	default:
		return sortKey{text: strings.TrimSpace(raw.String())}
	}
}

func (r Row) sortKey(key string) sortKey {
	if k, ok := r.keys[key]; ok {
		return k
	}
	if key == RankKey {
		return sortKey{num: float64(r.Rank)}
	}
	return resolveKey(r.Exchange, key)
}

// Comparator orders rows by one column. Missing values always sort last,
// whatever the direction.
func Comparator(key string, dir Direction) func(a, b Row) int {
	cat := categoryOf(key)
	coll := collate.New(language.English)

	return func(a, b Row) int {
		ka, kb := a.sortKey(key), b.sortKey(key)
		switch {
		case ka.missing && kb.missing:
			return 0
		case ka.missing:
			return 1
		case kb.missing:
			return -1
		}

		if cat == categoryString {
			return coll.CompareString(ka.text, kb.text) * int(dir)
		}
		return cmp.Compare(ka.num, kb.num) * int(dir)
	}
}

// SortRows returns a sorted copy. Equal rows keep their relative order, then
// fall back to app_name.
func SortRows(rows []Row, spec SortSpec) []Row {
	out := slices.Clone(rows)
	if spec.Key == "" {
		return out
	}

	by := Comparator(spec.Key, spec.Direction())
	slices.SortStableFunc(out, func(a, b Row) int {
		if c := by(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.ID(), b.ID())
	})
	return out
}
