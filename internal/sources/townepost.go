package sources

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

// TownePostURL is the magazine's community calendar, a plain HTML table.
const TownePostURL = "https://townepost.com/kokomo/calendar/"

// TownePost is a table adapter: rows of table.calendar-table are mapped
// positionally (date, title, venue by column index).
type TownePost struct {
	deps Deps
}

// NewTownePost creates the TownePost adapter.
func NewTownePost(d Deps) *TownePost {
	return &TownePost{deps: d}
}

func (s *TownePost) Name() string { return "TownePost" }
func (s *TownePost) URL() string  { return TownePostURL }

// Fetch retrieves the calendar table and maps each row with at least three
// cells; shorter rows (headers, separators) contribute nothing.
func (s *TownePost) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, TownePostURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse maps table rows positionally: date, title, venue.
func (s *TownePost) parse(doc *goquery.Document) []event.Event {
	events := make([]event.Event, 0)
	doc.Find("table.calendar-table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		startDate := cells.Eq(0).Text()
		title := cells.Eq(1).Text()
		venue := cells.Eq(2).Text()

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"start_date":   startDate,
			"venue":        venue,
			"url":          TownePostURL,
			"kaa_relevant": event.KAARelevant(title, "", ""),
		}))
	})

	return events
}
