package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

const (
	// HappeningNextURL is the aggregator's Kokomo page; listings are anchors
	// rather than cards.
	HappeningNextURL = "https://happeningnext.com/kokomo"

	happeningNextBase = "https://happeningnext.com"
)

// HappeningNext is a markup-list adapter over event anchors. Titles fall
// back from the nested .event-title through the anchor's title attribute to
// its visible text.
type HappeningNext struct {
	deps Deps
}

// NewHappeningNext creates the HappeningNext adapter.
func NewHappeningNext(d Deps) *HappeningNext {
	return &HappeningNext{deps: d}
}

func (s *HappeningNext) Name() string { return "HappeningNext" }
func (s *HappeningNext) URL() string  { return HappeningNextURL }

// Fetch retrieves the page and extracts one record per event anchor.
func (s *HappeningNext) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, HappeningNextURL)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

// parse extracts records from the event anchors.
func (s *HappeningNext) parse(doc *goquery.Document) []event.Event {
	events := make([]event.Event, 0)
	doc.Find(`a.event-item, a[href*="/event/"]`).Each(func(i int, sel *goquery.Selection) {
		title := sel.Find(".event-title").Text()
		if title == "" {
			title, _ = sel.Attr("title")
		}
		if title == "" {
			title = sel.Text()
		}
		title = strings.TrimSpace(title)
		if title == "" {
			return
		}

		startDate := sel.Find(".event-date").Text()
		venue := sel.Find(".event-location").Text()
		href, _ := sel.Attr("href")

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"start_date":   startDate,
			"venue":        venue,
			"url":          happeningNextBase + href,
			"kaa_relevant": event.KAARelevant(title, "", ""),
		}))
	})

	return events
}
