package event

import (
	"strings"
	"time"
)

// dateLayouts covers the start_date shapes the source sites emit, from ISO
// datetime attributes down to prose like "Saturday, October 5, 2024".
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"Jan 2 2006",
}

// ParseDate attempts to parse a record's start_date into a time.Time for
// sorting. The record itself keeps the source-native string; this is
// best-effort only and returns the zero time when nothing matches.
func ParseDate(dateText string) time.Time {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t
		}
	}

	// "October 5" without a year, assume the current year.
	if t, err := time.Parse("January 2", dateText); err == nil {
		now := time.Now()
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	if t, err := time.Parse("Jan 2", dateText); err == nil {
		now := time.Now()
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}
}
