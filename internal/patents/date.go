package patents

import (
	"strings"
	"time"
)

// Upstream date fields arrive in several shapes depending on the publishing
// office. Candidates are ordered most-specific-first and must consume the
// whole string.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"200601",
	"2006",
}

// NormalizeDate converts a raw upstream date string into a comparable sort
// key and a canonical YYYY-MM-DD form. Unparseable input yields the zero
// time (so it sorts as oldest) and an empty canonical string. It never
// fails.
func NormalizeDate(raw string) (time.Time, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t, t.Format("2006-01-02")
	}
	return time.Time{}, ""
}
