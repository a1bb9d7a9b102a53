package table

import (
	"fmt"
	"slices"
)

// ColumnKind selects how a column's cells are rendered.
type ColumnKind int

const (
	KindPlain ColumnKind = iota
	KindRank
	KindName
	KindCount
	KindBoolean
	KindFee
	KindDiscount
	KindIncidentList
	KindLinkToggle
	KindFiatList
	KindWebsite
)

const (
	RankKey    = "rank"
	NameKey    = "app_name"
	WebsiteKey = "website"
)

// Column 表格列定义
type Column struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Kind     ColumnKind `json:"kind"`
	MinSize  int        `json:"min_size,omitempty"`
	MaxSize  int        `json:"max_size,omitempty"`
	Sortable bool       `json:"sortable"`
	Hideable bool       `json:"hideable"`
	Truncate bool       `json:"truncate,omitempty"`
}

// Filter names a column set.
type Filter string

const (
	FilterFeatures Filter = "features"
	FilterFees     Filter = "fees"
	FilterSecurity Filter = "security"
	FilterCustom   Filter = "custom"
)

var presetFilters = []Filter{FilterFeatures, FilterFees, FilterSecurity}

var filterLabels = map[Filter]string{
	FilterFeatures: "Features",
	FilterFees:     "Fees",
	FilterSecurity: "Security",
	FilterCustom:   "+ Custom",
}

type columnDef struct {
	key     string
	label   string
	minSize int
	maxSize int
}

var columnDefinitions = map[Filter][]columnDef{
	FilterFeatures: {
		{key: NameKey, label: "Name"},
		{key: "coins", label: "# of Coins"},
		{key: "number_of_futures", label: "# of Futures"},
		{key: "max_leverage", label: "Max Leverage"},
		{key: "margin_spot", label: "Max Margin (spot)"},
		{key: "fiat_currencies", label: "Fiat Wallets"},
		{key: "247_support", label: "24/7 Support"},
		{key: "staking_or_earn", label: "Staking or Earn"},
		{key: "mobile_app", label: "Mobile App"},
		{key: "copy_trading", label: "Copy Trading"},
		{key: "trading_bots", label: "Trading Bots"},
		{key: "p2p_trading", label: "P2P Trading"},
	},
	FilterFees: {
		{key: NameKey, label: "Name"},
		{key: "maker_fee", label: "Maker Fee"},
		{key: "taker_fee", label: "Taker Fee"},
		{key: "futures_maker_fee", label: "Futures Maker Fee"},
		{key: "futures_taker_fee", label: "Futures Taker Fee"},
		{key: "rankfi_discount", label: "RankFi Discount"},
		{key: "rankfi_bonus", label: "RankFi Bonus"},
	},
	FilterSecurity: {
		{key: NameKey, label: "Name"},
		{key: "founded", label: "Founded", minSize: 85},
		{key: "number_of_users", label: "Users", minSize: 75},
		{key: "proof_of_reserves", label: "POR", minSize: 70},
		{key: "uses_cold_storage", label: "Cold Storage", maxSize: 95},
		{key: "2fa", label: "2FA", minSize: 70},
		{key: "insurance_policy", label: "Insurance", minSize: 100},
		{key: "hacks_or_incidents", label: "Hacks"},
		{key: "other_incidents", label: "Incidents"},
		{key: "kyc", label: "KYC", minSize: 75},
		{key: "publicly_traded", label: "Publicly Traded", maxSize: 90},
		{key: "headquarters", label: "Headquarters", maxSize: 120},
	},
}

// columns whose maxSize never truncates their text
var noTruncate = map[string]bool{
	"uses_cold_storage": true,
	"publicly_traded":   true,
}

func kindOf(key string) ColumnKind {
	switch {
	case key == RankKey:
		return KindRank
	case key == NameKey:
		return KindName
	case key == WebsiteKey:
		return KindWebsite
	case key == "rankfi_discount":
		return KindDiscount
	case key == "fiat_currencies":
		return KindFiatList
	case key == "proof_of_reserves" || key == "insurance_policy":
		return KindLinkToggle
	case incidentKeys[key]:
		return KindIncidentList
	case feeKeys[key]:
		return KindFee
	case booleanKeys[key]:
		return KindBoolean
	case countKeys[key]:
		return KindCount
	default:
		return KindPlain
	}
}

func (d columnDef) column() Column {
	return Column{
		Key:      d.key,
		Label:    d.label,
		Kind:     kindOf(d.key),
		MinSize:  d.minSize,
		MaxSize:  d.maxSize,
		Sortable: true,
		Hideable: d.key != NameKey,
		Truncate: d.maxSize > 0 && !noTruncate[d.key],
	}
}

var (
	rankColumn = Column{
		Key: RankKey, Label: "#", Kind: KindRank,
		MinSize: 40, MaxSize: 40, Sortable: true, Hideable: true,
	}
	websiteColumn = Column{
		Key: WebsiteKey, Label: "Website", Kind: KindWebsite,
	}
)

// PresetFilters lists the filters that carry a predefined column set.
func PresetFilters() []Filter {
	return slices.Clone(presetFilters)
}

// Filters lists every filter tab, custom last.
func Filters() []Filter {
	return append(PresetFilters(), FilterCustom)
}

func (f Filter) Label() string {
	return filterLabels[f]
}

// ParseFilter validates a filter id.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if _, ok := filterLabels[f]; !ok {
		return "", fmt.Errorf("unknown filter: %q", s)
	}
	return f, nil
}

// Definitions returns the data columns of a preset filter, name first.
func Definitions(f Filter) []Column {
	defs := columnDefinitions[f]
	out := make([]Column, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.column())
	}
	return out
}

// AllColumnKeys lists every data column key except the name, in preset
// order without duplicates.
func AllColumnKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, f := range presetFilters {
		for _, d := range columnDefinitions[f] {
			if d.key == NameKey || seen[d.key] {
				continue
			}
			seen[d.key] = true
			keys = append(keys, d.key)
		}
	}
	return keys
}

// ColumnByKey finds a column definition, including rank and website.
func ColumnByKey(key string) (Column, bool) {
	switch key {
	case RankKey:
		return rankColumn, true
	case WebsiteKey:
		return websiteColumn, true
	}
	for _, f := range presetFilters {
		for _, d := range columnDefinitions[f] {
			if d.key == key {
				return d.column(), true
			}
		}
	}
	return Column{}, false
}

// Columns builds the full column list for a filter: rank, the filter's data
// columns and website. For the custom filter the data columns are the name
// followed by the chosen keys in preset order.
func Columns(f Filter, custom []string) []Column {
	cols := []Column{rankColumn}

	if f == FilterCustom {
		name, _ := ColumnByKey(NameKey)
		cols = append(cols, name)
		for _, key := range AllColumnKeys() {
			if slices.Contains(custom, key) {
				c, _ := ColumnByKey(key)
				cols = append(cols, c)
			}
		}
	} else {
		cols = append(cols, Definitions(f)...)
	}

	return append(cols, websiteColumn)
}

// Visible drops hidden columns. The name and website columns cannot be
// hidden.
func Visible(cols []Column, hidden map[string]bool) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Hideable && hidden[c.Key] {
			continue
		}
		out = append(out, c)
	}
	return out
}
