package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songzhibin97/rankfi/internal/models"
)

func TestComparator_MissingAlwaysLast(t *testing.T) {
	rows := NewRows([]models.Exchange{
		{AppName: "Empty"},
		fullExchange("Full"),
	})
	empty, full := rows[0], rows[1]

	for _, key := range AllColumnKeys() {
		for _, dir := range []Direction{Asc, Desc} {
			by := Comparator(key, dir)
			assert.Positive(t, by(empty, full), "column %s dir %d", key, dir)
			assert.Negative(t, by(full, empty), "column %s dir %d", key, dir)
			assert.Zero(t, by(empty, empty), "column %s dir %d", key, dir)
		}
	}
}

func TestSortRows_ReverseKeepsMissingLast(t *testing.T) {
	rows := NewRows(sampleExchanges())

	for _, key := range []string{"coins", "maker_fee", "hacks_or_incidents", "rankfi_discount"} {
		asc := SortRows(rows, SortSpec{Key: key})
		desc := SortRows(rows, SortSpec{Key: key, Desc: true})

		for _, sorted := range [][]Row{asc, desc} {
			seenMissing := false
			for _, r := range sorted {
				missing := r.Exchange.Field(key).IsMissing()
				if seenMissing {
					assert.True(t, missing, "column %s: present value %s after a missing one", key, r.ID())
				}
				seenMissing = seenMissing || missing
			}
		}
	}
}

func TestSortRows(t *testing.T) {
	rows := NewRows(sampleExchanges())

	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{
			name: "rank ascending",
			spec: SortSpec{Key: RankKey},
			want: []string{"Kraken Pro", "Binance", "AscendEx", "Bybit", "Coinbase", "OKX"},
		},
		{
			name: "coins ascending",
			spec: SortSpec{Key: "coins"},
			want: []string{"Kraken Pro", "OKX", "Binance", "AscendEx", "Bybit", "Coinbase"},
		},
		{
			name: "coins descending",
			spec: SortSpec{Key: "coins", Desc: true},
			want: []string{"Bybit", "AscendEx", "Binance", "OKX", "Kraken Pro", "Coinbase"},
		},
		{
			name: "maker fee uses first bound, ties by name",
			spec: SortSpec{Key: "maker_fee"},
			want: []string{"Bybit", "Binance", "OKX", "AscendEx", "Kraken Pro", "Coinbase"},
		},
		{
			name: "hacks by first year",
			spec: SortSpec{Key: "hacks_or_incidents"},
			want: []string{"Bybit", "Kraken Pro", "Binance", "AscendEx", "Coinbase", "OKX"},
		},
		{
			name: "hacks descending",
			spec: SortSpec{Key: "hacks_or_incidents", Desc: true},
			want: []string{"AscendEx", "Binance", "Kraken Pro", "Bybit", "Coinbase", "OKX"},
		},
		{
			name: "boolean false before true",
			spec: SortSpec{Key: "proof_of_reserves"},
			want: []string{"AscendEx", "Binance", "Bybit", "Coinbase", "Kraken Pro", "OKX"},
		},
		{
			name: "boolean descending",
			spec: SortSpec{Key: "proof_of_reserves", Desc: true},
			want: []string{"Binance", "Bybit", "Coinbase", "Kraken Pro", "OKX", "AscendEx"},
		},
		{
			name: "name",
			spec: SortSpec{Key: NameKey},
			want: []string{"AscendEx", "Binance", "Bybit", "Coinbase", "Kraken Pro", "OKX"},
		},
		{
			name: "name descending",
			spec: SortSpec{Key: NameKey, Desc: true},
			want: []string{"OKX", "Kraken Pro", "Coinbase", "Bybit", "Binance", "AscendEx"},
		},
		{
			name: "no sort keeps input order",
			spec: SortSpec{},
			want: []string{"Bybit", "Binance", "Coinbase", "Kraken Pro", "AscendEx", "OKX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(SortRows(rows, tt.spec)))
		})
	}
}

func TestSortRows_Idempotent(t *testing.T) {
	rows := NewRows(sampleExchanges())

	for _, key := range append([]string{RankKey, NameKey}, AllColumnKeys()...) {
		for _, desc := range []bool{false, true} {
			spec := SortSpec{Key: key, Desc: desc}
			once := SortRows(rows, spec)
			twice := SortRows(once, spec)
			require.Equal(t, names(once), names(twice), "column %s desc %v", key, desc)
		}
	}
}

func TestSortRows_DoesNotModifyInput(t *testing.T) {
	rows := NewRows(sampleExchanges())
	before := names(rows)

	_ = SortRows(rows, SortSpec{Key: "coins", Desc: true})
	assert.Equal(t, before, names(rows))
}

func TestComparator_UnknownBooleanSortsAsMissing(t *testing.T) {
	odd := fullExchange("Odd")
	odd.MobileApp = models.String("Coming soon")
	rows := NewRows([]models.Exchange{odd, fullExchange("Normal")})

	by := Comparator("mobile_app", Desc)
	assert.Positive(t, by(rows[0], rows[1]))
}

func TestComparator_TrimsStrings(t *testing.T) {
	a := fullExchange("A")
	a.Headquarters = models.String("  Seychelles")
	b := fullExchange("B")
	b.Headquarters = models.String("Cayman Islands")
	rows := NewRows([]models.Exchange{a, b})

	assert.Positive(t, Comparator("headquarters", Asc)(rows[0], rows[1]))
	assert.Negative(t, Comparator("headquarters", Desc)(rows[0], rows[1]))
}
