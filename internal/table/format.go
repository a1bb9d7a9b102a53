package table

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/songzhibin97/rankfi/internal/models"
)

const notAvailable = "N/A"

var placeholderColors = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// FormatCellValue is the default cell formatter.
func FormatCellValue(v models.Value) string {
	if v.IsEmpty() {
		return notAvailable
	}
	if v.Kind() == models.KindBool {
		if v.IsTrue() {
			return "Yes"
		}
		return "No"
	}
	return v.String()
}

// FormatFlag renders a boolean-like value, or "N/A" when it is not one.
func FormatFlag(v models.Value) string {
	switch v.Flag() {
	case models.FlagYes:
		return "Yes"
	case models.FlagNo:
		return "No"
	default:
		return notAvailable
	}
}

// PlaceholderColor picks a stable logo colour from the first character of
// the exchange name.
func PlaceholderColor(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return placeholderColors[0]
	}
	return placeholderColors[int(r)%len(placeholderColors)]
}

// Slug builds the URL-friendly name used for detail pages.
func Slug(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
}

// DetailPath is the detail page link for an exchange.
func DetailPath(name string) string {
	return "/cex/" + Slug(name) + "/"
}
