package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// PatchURL is the Patch local-news calendar for Kokomo. Like the Tribune,
// the usable data lives in schema.org JSON-LD blocks.
const PatchURL = "https://patch.com/indiana/kokomo/calendar"

// Patch is a structured-data adapter over the calendar's ld+json blocks.
type Patch struct {
	deps Deps
}

// NewPatch creates the Patch adapter.
func NewPatch(d Deps) *Patch {
	return &Patch{deps: d}
}

func (s *Patch) Name() string { return "Patch" }
func (s *Patch) URL() string  { return PatchURL }

// Fetch retrieves the calendar and maps every JSON-LD item typed "Event".
func (s *Patch) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, PatchURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse maps the document's JSON-LD Event items into records.
func (s *Patch) parse(doc *goquery.Document) []event.Event {
	items := jsonLDEvents(doc, s.deps.Log.With().Str("source", s.Name()).Logger())

	events := make([]event.Event, 0, len(items))
	for _, item := range items {
		events = append(events, mapLDEvent(s.Name(), PatchURL, item))
	}
	return events
}
