package event

import "strings"

// DefaultCategory is applied when a source provides no category of its own.
const DefaultCategory = "General"

// Event is the normalized record every source adapter produces. Field names
// match the JSON exchange schema consumed by the calendar frontend; every
// field is always present, possibly as an empty string.
type Event struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	KAARelevant bool   `json:"kaa_relevant"`
}

// Raw is the loosely-typed field bag adapters hand to Normalize. Values of
// unexpected type are tolerated and coerced to the zero value.
type Raw map[string]any

// Normalize coerces a raw field bag into a fully-populated Event. String
// fields are trimmed; missing, nil or non-string values become empty strings.
// Category falls back to DefaultCategory when the source provides none.
// Source comes only from the explicit argument, never from the bag.
// Normalize is pure: no I/O, no logging, no failure mode.
func Normalize(source string, raw Raw) Event {
	category := str(raw, "category")
	if category == "" {
		category = DefaultCategory
	}

	return Event{
		Title:       str(raw, "title"),
		Description: str(raw, "description"),
		StartDate:   str(raw, "start_date"),
		EndDate:     str(raw, "end_date"),
		Time:        str(raw, "time"),
		Venue:       str(raw, "venue"),
		Address:     str(raw, "address"),
		Category:    category,
		Source:      source,
		URL:         str(raw, "url"),
		KAARelevant: boolean(raw, "kaa_relevant"),
	}
}

// str reads a trimmed string field from the bag, tolerating absence and
// surprising types.
func str(raw Raw, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// boolean reads a strict bool field from the bag; anything else is false.
func boolean(raw Raw, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
