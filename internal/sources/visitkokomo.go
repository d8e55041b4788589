package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// VisitKokomoURL is the tourism bureau's calendar page (The Events Calendar
// WordPress plugin, server-rendered list view).
const VisitKokomoURL = "https://visitkokomo.org/calendar-of-events/"

// VisitKokomo is a markup-list adapter over the tribe-events listing rows.
type VisitKokomo struct {
	deps Deps
}

// NewVisitKokomo creates the VisitKokomo adapter.
func NewVisitKokomo(d Deps) *VisitKokomo {
	return &VisitKokomo{deps: d}
}

func (s *VisitKokomo) Name() string { return "VisitKokomo" }
func (s *VisitKokomo) URL() string  { return VisitKokomoURL }

// Fetch retrieves the calendar page and extracts one record per listing row.
func (s *VisitKokomo) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, VisitKokomoURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse extracts records from the tribe-events list markup.
func (s *VisitKokomo) parse(doc *goquery.Document) []event.Event {
	events := make([]event.Event, 0)
	doc.Find(".tribe-events-calendar-list__event-row").Each(func(i int, sel *goquery.Selection) {
		titleLink := sel.Find(".tribe-events-calendar-list__event-title a")
		title := titleLink.Text()
		href, _ := titleLink.Attr("href")
		startDate, _ := sel.Find(".tribe-event-date-start").Attr("datetime")
		description := sel.Find(".tribe-events-calendar-list__event-description").Text()
		venue := sel.Find(".tribe-events-venue-details__name").Text()
		address := sel.Find(".tribe-events-venue-details__address").Text()

		if title == "" && startDate == "" {
			return // empty shell row, nothing to extract
		}
		if href == "" {
			href = VisitKokomoURL
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"description":  description,
			"start_date":   startDate,
			"venue":        venue,
			"address":      address,
			"url":          href,
			"kaa_relevant": event.KAARelevant(title, description, ""),
		}))
	})

	return events
}
