package sources

import (
	"context"
	"time"

	"github.com/apognu/gocal"

	"github.com/kokomoarts/kokomo-events/internal/event"
	"github.com/kokomoarts/kokomo-events/internal/fetch"
)

// WWKIFeedURL is the radio station's event calendar exported as iCalendar.
const WWKIFeedURL = "https://www.wwki.com/events/?ical=1"

// WWKI is a feed adapter: it parses the station's iCalendar export and maps
// VEVENT components directly, with no markup involved.
type WWKI struct {
	deps Deps
}

// NewWWKI creates the WWKI adapter.
func NewWWKI(d Deps) *WWKI {
	return &WWKI{deps: d}
}

func (s *WWKI) Name() string { return "WWKI" }
func (s *WWKI) URL() string  { return WWKIFeedURL }

// Fetch downloads and parses the feed. Summary maps to title, DTSTART/DTEND
// split into date and time parts, LOCATION to venue.
func (s *WWKI) Fetch(ctx context.Context) ([]event.Event, error) {
	components, err := fetch.Calendar(ctx, s.deps.Client, WWKIFeedURL)
	if err != nil {
		return nil, err
	}
	return s.parse(components), nil
}

// parse maps VEVENT components into records.
func (s *WWKI) parse(components []gocal.Event) []event.Event {
	events := make([]event.Event, 0, len(components))
	for _, c := range components {
		var startDate, timeOfDay, endDate string
		if c.Start != nil {
			startDate = c.Start.Format("2006-01-02")
			if !isMidnight(*c.Start) {
				timeOfDay = c.Start.Format(time.Kitchen)
			}
		}
		if c.End != nil {
			endDate = c.End.Format("2006-01-02")
		}

		url := c.URL
		if url == "" {
			url = WWKIFeedURL
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        c.Summary,
			"description":  c.Description,
			"start_date":   startDate,
			"end_date":     endDate,
			"time":         timeOfDay,
			"venue":        c.Location,
			"url":          url,
			"kaa_relevant": event.KAARelevant(c.Summary, c.Description, ""),
		}))
	}

	return events
}

// isMidnight distinguishes all-day VEVENTs (date-only DTSTART) from timed
// ones; an all-day event gets no time-of-day string.
func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}
