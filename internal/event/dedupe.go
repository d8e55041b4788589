package event

import "strings"

// Key returns the dedup identity for an event: the case-insensitive
// composite of title, start date and venue. No other fields participate.
func Key(e Event) string {
	return strings.ToLower(e.Title + "|" + e.StartDate + "|" + e.Venue)
}

// Dedupe collapses records that describe the same real-world event, keeping
// the first record observed for each distinct key in input order. The filter
// is a stable single pass; running it over its own output is a no-op.
//
// Records with all three key fields empty share one key and collapse to a
// single record. With no better identifying signal that is accepted behavior.
func Dedupe(events []Event) []Event {
	seen := make(map[string]bool, len(events))
	unique := make([]Event, 0, len(events))
	for _, e := range events {
		k := Key(e)
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, e)
	}
	return unique
}
