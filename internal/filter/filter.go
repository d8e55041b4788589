// Package filter narrows an aggregated event list by the same criteria the
// browser UI offers: free-text search, category, source and the KAA
// relevance flag. The delivery boundary never filters; this exists for the
// terminal workflow.
package filter

import (
	"strings"
	"time"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// Filter represents event filtering criteria. Zero criteria match all
// events.
type Filter struct {
	// Search is a case-insensitive substring match over title, description
	// and venue.
	Search string

	// Sources restricts to the named adapters (case-insensitive).
	Sources []string

	// Categories restricts to the named categories (case-insensitive).
	Categories []string

	// KAAOnly keeps only events flagged relevant to the art association.
	KAAOnly bool

	// Date range over the parsed start date; events whose start date cannot
	// be parsed are kept (safer default).
	DateFrom *time.Time
	DateTo   *time.Time
}

// IsEmpty reports whether the filter would match every event.
func (f *Filter) IsEmpty() bool {
	return f.Search == "" &&
		len(f.Sources) == 0 &&
		len(f.Categories) == 0 &&
		!f.KAAOnly &&
		f.DateFrom == nil &&
		f.DateTo == nil
}

// Matches checks an event against all active criteria.
func (f *Filter) Matches(e event.Event) bool {
	if f.KAAOnly && !e.KAARelevant {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(e.Title + " " + e.Description + " " + e.Venue)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	if len(f.Sources) > 0 && !containsFold(f.Sources, e.Source) {
		return false
	}

	if len(f.Categories) > 0 && !containsFold(f.Categories, e.Category) {
		return false
	}

	if f.DateFrom != nil || f.DateTo != nil {
		start := event.ParseDate(e.StartDate)
		if !start.IsZero() {
			if f.DateFrom != nil && start.Before(*f.DateFrom) {
				return false
			}
			if f.DateTo != nil && start.After(*f.DateTo) {
				return false
			}
		}
	}

	return true
}

// Apply returns the events matching all active criteria, preserving order.
func (f *Filter) Apply(events []event.Event) []event.Event {
	if f.IsEmpty() {
		return events
	}

	matched := make([]event.Event, 0, len(events))
	for _, e := range events {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(strings.TrimSpace(s), needle) {
			return true
		}
	}
	return false
}
