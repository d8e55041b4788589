package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// HowardCountyMuseumURL is the Seiberling Mansion / county museum program
// page. Every event happens at the museum, so venue and address are fixed.
const HowardCountyMuseumURL = "https://www.howardcountymuseum.org/events"

const (
	howardCountyMuseumVenue   = "Howard County Museum"
	howardCountyMuseumAddress = "1200 W Sycamore St, Kokomo, IN 46901"
)

// HowardCountyMuseum is a markup-list adapter over the museum's program
// listings.
type HowardCountyMuseum struct {
	deps Deps
}

// NewHowardCountyMuseum creates the HowardCountyMuseum adapter.
func NewHowardCountyMuseum(d Deps) *HowardCountyMuseum {
	return &HowardCountyMuseum{deps: d}
}

func (s *HowardCountyMuseum) Name() string { return "HowardCountyMuseum" }
func (s *HowardCountyMuseum) URL() string  { return HowardCountyMuseumURL }

// Fetch retrieves the program page and extracts one record per listing.
func (s *HowardCountyMuseum) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, HowardCountyMuseumURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse extracts records from the museum's program listings.
func (s *HowardCountyMuseum) parse(doc *goquery.Document) []event.Event {
	events := make([]event.Event, 0)
	doc.Find(".event-listing, .program-item").Each(func(i int, sel *goquery.Selection) {
		title := sel.Find("h3, .event-title").First().Text()
		startDate := sel.Find(".event-date, .date").First().Text()
		description := sel.Find(".event-description, p").First().Text()

		if title == "" && startDate == "" {
			return
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"description":  description,
			"start_date":   startDate,
			"venue":        howardCountyMuseumVenue,
			"address":      howardCountyMuseumAddress,
			"category":     "History",
			"url":          HowardCountyMuseumURL,
			"kaa_relevant": event.KAARelevant(title, description, ""),
		}))
	})

	return events
}
