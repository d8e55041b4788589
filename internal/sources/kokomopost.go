package sources

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kokomoarts/kokomo-events/internal/event"
)

const (
	// KokomoPostURL is the newspaper's calendar, built client-side; the
	// static markup is an empty shell.
	KokomoPostURL = "https://thekokomopost.com/calendar"

	// kokomoPostMarker matches whichever card layout the site currently
	// ships; it has cycled through all three.
	kokomoPostMarker = ".event-card, .event, .calendar-list-item"
)

// KokomoPost is a rendered-page adapter: it captures post-script markup via
// the renderer, then applies markup-list extraction to the event cards.
type KokomoPost struct {
	deps Deps
}

// NewKokomoPost creates the KokomoPost adapter.
func NewKokomoPost(d Deps) *KokomoPost {
	return &KokomoPost{deps: d}
}

func (s *KokomoPost) Name() string { return "KokomoPost" }
func (s *KokomoPost) URL() string  { return KokomoPostURL }

// Fetch renders the calendar page and extracts one record per event card.
// Relative event links are resolved against the page URL.
func (s *KokomoPost) Fetch(ctx context.Context) ([]event.Event, error) {
	html, err := s.deps.Renderer.HTML(ctx, KokomoPostURL, kokomoPostMarker)
	if err != nil {
		return nil, err
	}
	return s.parse(html)
}

// parse applies markup-list extraction to the rendered document.
func (s *KokomoPost) parse(html string) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(KokomoPostURL)
	if err != nil {
		return nil, err
	}

	events := make([]event.Event, 0)
	doc.Find(kokomoPostMarker).Each(func(i int, sel *goquery.Selection) {
		title := sel.Find(".event-title, h3").First().Text()
		startDate := sel.Find(".event-date").Text()
		description := sel.Find(".event-description").Text()
		venue := sel.Find(".event-venue").Text()

		if title == "" && startDate == "" {
			return
		}

		link := KokomoPostURL
		if href, ok := sel.Find("a").First().Attr("href"); ok && href != "" {
			if resolved, err := base.Parse(href); err == nil {
				link = resolved.String()
			}
		}

		events = append(events, event.Normalize(s.Name(), event.Raw{
			"title":        title,
			"description":  description,
			"start_date":   startDate,
			"venue":        venue,
			"url":          link,
			"kaa_relevant": event.KAARelevant(title, description, ""),
		}))
	})

	return events, nil
}
