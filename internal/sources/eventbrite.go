package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

const (
	// EventbriteURL is the commerce platform's Kokomo search page; listings
	// only exist after client-side rendering.
	EventbriteURL = "https://www.eventbrite.com/d/in--kokomo/events/"

	eventbriteMarker = `div[data-testid="event-card-container"]`
)

// Eventbrite is a rendered-page adapter over the search result cards. The
// cards carry no structural classes, so date and venue are read positionally
// from the first two paragraphs.
type Eventbrite struct {
	deps Deps
}

// NewEventbrite creates the Eventbrite adapter.
func NewEventbrite(d Deps) *Eventbrite {
	return &Eventbrite{deps: d}
}

func (s *Eventbrite) Name() string { return "Eventbrite" }
func (s *Eventbrite) URL() string  { return EventbriteURL }

// Fetch renders the search page and extracts one record per event card.
func (s *Eventbrite) Fetch(ctx context.Context) ([]event.Event, error) {
	html, err := s.deps.Renderer.HTML(ctx, EventbriteURL, eventbriteMarker)
	if err != nil {
		return nil, err
	}
	return s.parse(html)
}

// parse extracts records from the rendered search result cards.
func (s *Eventbrite) parse(html string) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	events := make([]event.Event, 0)
	doc.Find(eventbriteMarker).Each(func(i int, sel *goquery.Selection) {
		title := sel.Find("h2").First().Text()
		startDate := sel.Find("p:first-of-type").First().Text()
		venue := sel.Find("p:nth-of-type(2)").First().Text()
		link, _ := sel.Find("a").First().Attr("href")

		if title == "" {
			return
		}
		if link == "" {
			link = EventbriteURL
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"start_date":   startDate,
			"venue":        venue,
			"url":          link,
			"kaa_relevant": event.KAARelevant(title, "", ""),
		}))
	})

	return events, nil
}
