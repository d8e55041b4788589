package sources

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// ldEvent is the subset of a schema.org Event the adapters map. Only items
// whose @type is "Event" are kept; Organization, BreadcrumbList and the
// like share the same script blocks and are filtered out.
type ldEvent struct {
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	EventType   string      `json:"eventType"`
	URL         string      `json:"url"`
	Location    *ldLocation `json:"location"`
}

type ldLocation struct {
	Name    string
	Address *ldAddress
}

type ldAddress struct {
	StreetAddress string `json:"streetAddress"`
}

// UnmarshalJSON tolerates the two location shapes seen in the wild: a full
// Place object or a bare string name.
func (l *ldLocation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		l.Name = name
		return nil
	}

	var place struct {
		Name    string     `json:"name"`
		Address *ldAddress `json:"address"`
	}
	if err := json.Unmarshal(data, &place); err != nil {
		return err
	}
	l.Name = place.Name
	l.Address = place.Address
	return nil
}

// jsonLDEvents walks every application/ld+json script block in a document
// and collects the items typed "Event". Blocks may hold a single object or
// an array; a malformed block is logged and skipped without aborting the
// remaining blocks.
func jsonLDEvents(doc *goquery.Document, log zerolog.Logger) []ldEvent {
	var events []ldEvent

	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		payload := []byte(sel.Text())

		var batch []ldEvent
		if err := json.Unmarshal(payload, &batch); err != nil {
			var single ldEvent
			if err := json.Unmarshal(payload, &single); err != nil {
				log.Warn().Int("block", i).Err(err).Msg("skipping malformed ld+json block")
				return
			}
			batch = []ldEvent{single}
		}

		for _, item := range batch {
			if item.Type == "Event" {
				events = append(events, item)
			}
		}
	})

	return events
}
