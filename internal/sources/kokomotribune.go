package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// KokomoTribuneURL is the newspaper's events page. The listing markup is
// obfuscated, but every event is duplicated into schema.org JSON-LD blocks.
const KokomoTribuneURL = "https://www.kokomotribune.com/events/"

// KokomoTribune is a structured-data adapter over the page's ld+json blocks.
type KokomoTribune struct {
	deps Deps
}

// NewKokomoTribune creates the KokomoTribune adapter.
func NewKokomoTribune(d Deps) *KokomoTribune {
	return &KokomoTribune{deps: d}
}

func (s *KokomoTribune) Name() string { return "KokomoTribune" }
func (s *KokomoTribune) URL() string  { return KokomoTribuneURL }

// Fetch retrieves the page and maps every JSON-LD item typed "Event".
// startDate/endDate are split into calendar date and time-of-day parts.
func (s *KokomoTribune) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, KokomoTribuneURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse maps the document's JSON-LD Event items into records.
func (s *KokomoTribune) parse(doc *goquery.Document) []event.Event {
	items := jsonLDEvents(doc, s.deps.Log.With().Str("source", s.Name()).Logger())

	events := make([]event.Event, 0, len(items))
	for _, item := range items {
		events = append(events, mapLDEvent(s.Name(), KokomoTribuneURL, item))
	}
	return events
}

// mapLDEvent maps a schema.org Event into the normalized record. Shared by
// the structured-data adapters.
func mapLDEvent(source, pageURL string, item ldEvent) event.Event {
	startDate, timeOfDay := splitDateTime(item.StartDate)
	endDate, _ := splitDateTime(item.EndDate)

	var venue, address string
	if item.Location != nil {
		venue = item.Location.Name
		if item.Location.Address != nil {
			address = item.Location.Address.StreetAddress
		}
	}

	url := item.URL
	if url == "" {
		url = pageURL
	}

	return event.Normalize(source, event.Raw{
		"title":        item.Name,
		"description":  item.Description,
		"start_date":   startDate,
		"end_date":     endDate,
		"time":         timeOfDay,
		"venue":        venue,
		"address":      address,
		"category":     item.EventType,
		"url":          url,
		"kaa_relevant": event.KAARelevant(item.Name, item.Description, item.EventType),
	})
}
