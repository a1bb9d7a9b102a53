package table

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/songzhibin97/rankfi/internal/models"
)

var (
	plusCountRe   = regexp.MustCompile(`^(\d+)\+?$`)
	suffixCountRe = regexp.MustCompile(`(?i)^([\d.]+)([KMB])?\+?$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
	decimalRe     = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)
	yearRe        = regexp.MustCompile(`\d{4}`)
)

// ParseCount turns counts such as 350, "300+", "1.5M" or "1B" into an integer.
// Unparseable input yields 0.
func ParseCount(v models.Value) int64 {
	if f, ok := v.Float(); ok {
		return int64(f)
	}
	return ParseCountString(v.String())
}

// ParseCountString is ParseCount for plain strings. A trailing "+" after a
// K/M/B suffix is accepted and dropped, so "1.5M+" is 1500000.
func ParseCountString(raw string) int64 {
	s := strings.TrimSpace(raw)

	if m := plusCountRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return n
		}
	}

	if m := suffixCountRe.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			switch strings.ToUpper(m[2]) {
			case "K":
				f *= 1_000
			case "M":
				f *= 1_000_000
			case "B":
				f *= 1_000_000_000
			}
			return int64(math.Round(f))
		}
	}

	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// firstDecimal extracts the first decimal number found anywhere in s.
func firstDecimal(s string) (float64, bool) {
	m := decimalRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseFee returns the first bound of a fee string like "0.10%" or
// "0.10% to 0.20%", or 0 when there is no number.
func ParseFee(v models.Value) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	f, _ := firstDecimal(v.String())
	return f
}

// IncidentYear returns the first 4-digit year in an incident list. "No" and
// blank values are year 0.
func IncidentYear(v models.Value) int {
	if f, ok := v.Float(); ok {
		return int(f)
	}
	s := strings.TrimSpace(v.String())
	if s == "" || s == "No" {
		return 0
	}
	m := yearRe.FindString(s)
	if m == "" {
		return 0
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return year
}
