package table

import (
	"strings"

	"github.com/songzhibin97/rankfi/internal/models"
)

// Badge is one hack or incident entry, optionally linked to a write-up.
type Badge struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// SplitIncidentValue splits "2023, 2025" into badge labels. Blank, "No" and
// "N/A" produce none.
func SplitIncidentValue(raw string) []string {
	if raw == "" || raw == "No" || raw == notAvailable {
		return nil
	}

	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// IncidentBadges pairs each label with the link at the same position, falling
// back to the first link.
func IncidentBadges(raw string, urls models.URLList) []Badge {
	labels := SplitIncidentValue(raw)
	if len(labels) == 0 {
		return nil
	}

	badges := make([]Badge, len(labels))
	for i, label := range labels {
		badges[i] = Badge{Label: label}
		switch {
		case i < len(urls) && urls[i] != "":
			badges[i].URL = urls[i]
		default:
			badges[i].URL = urls.First()
		}
	}
	return badges
}
