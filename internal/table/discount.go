package table

import (
	"strings"

	"github.com/shopspring/decimal"
)

const feeRangeSep = " to "

var hundred = decimal.NewFromInt(100)

// ApplyDiscount reduces a fee string such as "0.10%" or "0.10% to 0.20%" by
// a percentage discount like "10%". Anything it cannot parse is returned
// unchanged.
func ApplyDiscount(fee, discount string) string {
	if fee == "" || fee == notAvailable || discount == "" {
		return fee
	}

	pct, ok := firstDecimalExact(discount)
	if !ok {
		return fee
	}
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))

	if strings.Contains(fee, feeRangeSep) {
		bounds := strings.SplitN(fee, feeRangeSep, 2)
		lo, okLo := firstDecimalExact(bounds[0])
		hi, okHi := firstDecimalExact(bounds[1])
		if !okLo || !okHi {
			return fee
		}
		return percent(lo.Mul(factor)) + feeRangeSep + percent(hi.Mul(factor))
	}

	v, ok := firstDecimalExact(fee)
	if !ok {
		return fee
	}
	return percent(v.Mul(factor))
}

// firstDecimalExact is firstDecimal without the float round trip.
func firstDecimalExact(s string) (decimal.Decimal, bool) {
	m := decimalRe.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
