package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
	"github.com/kokomoarts/kokomo-events/internal/fetch"
)

// The chamber of commerce runs the same single-page app on two calendars.
const (
	GreaterKokomoEventsURL    = "https://www.greaterkokomo.com/events"
	GreaterKokomoCommunityURL = "https://www.greaterkokomo.com/community-calendar"

	// initialStateMarker is the global the app hydrates itself from. The
	// pre-hydration markup carries no listings; the embedded state is the
	// only server-rendered copy of the data.
	initialStateMarker = "window.__INITIAL_STATE__"
)

// initialState is the slice of the app state the adapter reads.
type initialState struct {
	Events struct {
		Items []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			StartDate   string `json:"startDate"`
			EndDate     string `json:"endDate"`
			Time        string `json:"time"`
			Location    string `json:"location"`
			Address     string `json:"address"`
			Category    string `json:"category"`
			URL         string `json:"url"`
		} `json:"items"`
	} `json:"events"`
}

// GreaterKokomo is an embedded-state adapter: it extracts the JSON payload
// assigned to window.__INITIAL_STATE__ in an inline script and maps its
// event items. One adapter serves both chamber calendars under distinct
// source names.
type GreaterKokomo struct {
	deps Deps
	url  string
	name string
}

// NewGreaterKokomo creates a chamber calendar adapter for the given page.
func NewGreaterKokomo(d Deps, url, name string) *GreaterKokomo {
	return &GreaterKokomo{deps: d, url: url, name: name}
}

func (s *GreaterKokomo) Name() string { return s.name }
func (s *GreaterKokomo) URL() string  { return s.url }

// Fetch retrieves the page, locates the state assignment and maps its event
// items. A page without the marker yields zero records without error; a
// marker with an unparseable payload is a fetch failure.
func (s *GreaterKokomo) Fetch(ctx context.Context) ([]event.Event, error) {
	doc, err := s.deps.Client.Document(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return s.parse(doc)
}

// parse locates the embedded state script and maps its event items.
func (s *GreaterKokomo) parse(doc *goquery.Document) ([]event.Event, error) {
	var script string
	doc.Find("script").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), initialStateMarker) {
			script = sel.Text()
			return false
		}
		return true
	})
	if script == "" {
		s.deps.Log.Warn().Str("source", s.name).Msg("initial state marker not found")
		return []event.Event{}, nil
	}

	payload, ok := fetch.ExtractAssignedJSON(script, initialStateMarker)
	if !ok {
		return nil, fmt.Errorf("no state object after %s marker", initialStateMarker)
	}

	var state initialState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("parsing embedded state: %w", err)
	}

	events := make([]event.Event, 0, len(state.Events.Items))
	for _, item := range state.Events.Items {
		url := item.URL
		if url == "" {
			url = s.url
		}
		events = append(events, event.Normalize(s.name, event.Raw{
			"title":        item.Title,
			"description":  item.Description,
			"start_date":   item.StartDate,
			"end_date":     item.EndDate,
			"time":         item.Time,
			"venue":        item.Location,
			"address":      item.Address,
			"category":     item.Category,
			"url":          url,
			"kaa_relevant": event.KAARelevant(item.Title, item.Description, item.Category),
		}))
	}

	return events, nil
}
