package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the event list in the specified format
func WriteOutput(w io.Writer, events []event.Event, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, events)
	case FormatText:
		return writeText(w, events, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the events as a JSON array, the same shape the HTTP
// boundary serves.
func writeJSON(w io.Writer, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(events)
}

// writeText outputs the events as human-readable text
func writeText(w io.Writer, events []event.Event, verbose bool) error {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, e := range events {
		marker := " "
		if e.KAARelevant {
			marker = "*"
		}

		line := e.Title
		if e.StartDate != "" {
			line = fmt.Sprintf("%s — %s", line, e.StartDate)
			if e.Time != "" {
				line = fmt.Sprintf("%s %s", line, e.Time)
			}
		}
		fmt.Fprintf(w, "%s %s [%s]\n", marker, line, e.Source)

		if e.Venue != "" {
			fmt.Fprintf(w, "     Venue: %s\n", e.Venue)
		}
		if verbose {
			if e.Category != "" {
				fmt.Fprintf(w, "     Category: %s\n", e.Category)
			}
			if e.Address != "" {
				fmt.Fprintf(w, "     Address: %s\n", e.Address)
			}
			if e.Description != "" {
				fmt.Fprintf(w, "     %s\n", e.Description)
			}
			if e.URL != "" {
				fmt.Fprintf(w, "     %s\n", e.URL)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events (* = KAA relevant)\n", len(events))
	return nil
}
