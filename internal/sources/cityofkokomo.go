package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// CityOfKokomoURL is the municipal calendar page. Listings carry no
// per-event links, so records link back to the page itself.
const CityOfKokomoURL = "https://www.cityofkokomo.org/calendar.php"

// CityOfKokomo is a markup-list adapter over the city's .event blocks.
type CityOfKokomo struct {
	deps Deps
}

// NewCityOfKokomo creates the CityOfKokomo adapter.
func NewCityOfKokomo(d Deps) *CityOfKokomo {
	return &CityOfKokomo{deps: d}
}

func (s *CityOfKokomo) Name() string { return "CityOfKokomo" }
func (s *CityOfKokomo) URL() string  { return CityOfKokomoURL }

// Fetch retrieves the municipal calendar and extracts one record per block.
// The title selector has drifted between site revisions, so .event-title is
// tried first and h3 second.
func (s *CityOfKokomo) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, CityOfKokomoURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse extracts records from the city's .event blocks.
func (s *CityOfKokomo) parse(doc *goquery.Document) []event.Event {
	events := make([]event.Event, 0)
	doc.Find(".event").Each(func(i int, sel *goquery.Selection) {
		title := sel.Find(".event-title").Text()
		if title == "" {
			title = sel.Find("h3").Text()
		}
		startDate := sel.Find(".event-date").Text()
		description := sel.Find(".event-description").Text()
		venue := sel.Find(".event-location").Text()

		if title == "" && startDate == "" {
			return
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"description":  description,
			"start_date":   startDate,
			"venue":        venue,
			"url":          CityOfKokomoURL,
			"kaa_relevant": event.KAARelevant(title, description, ""),
		}))
	})

	return events
}
