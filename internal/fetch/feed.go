package fetch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/apognu/gocal"
)

// Calendar is the feed retrieval strategy: fetch an iCalendar document
// through the static client and parse it into structured VEVENT components.
// Recurring events are expanded within a window of one month back to one
// year ahead, matching how far out the sources publish.
func Calendar(ctx context.Context, client *Client, url string) ([]gocal.Event, error) {
	body, err := client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().AddDate(1, 0, 0)

	parser := gocal.NewParser(bytes.NewReader(body))
	parser.Start, parser.End = &start, &end
	if err := parser.Parse(); err != nil {
		return nil, fmt.Errorf("parsing calendar feed %s: %w", url, err)
	}

	return parser.Events, nil
}
