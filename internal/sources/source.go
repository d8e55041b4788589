package sources

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kokomoarts/kokomo-events/internal/event"
	"github.com/kokomoarts/kokomo-events/internal/fetch"
)

// Source is one external site's adapter: fetch its listing and map it to
// zero or more normalized event records. A whole-fetch failure (transport,
// rendering, unusable payload) is returned as an error for the aggregator to
// record; faults in individual listing elements are absorbed inside the
// adapter and never abort the pass.
type Source interface {
	Name() string
	URL() string
	Fetch(ctx context.Context) ([]event.Event, error)
}

// Deps carries the collaborators adapters compose: the static fetch client,
// the page renderer for client-rendered sites, and a logger for operational
// warnings. Adapters pick the strategy their source needs.
type Deps struct {
	Client   *fetch.Client
	Renderer fetch.PageRenderer
	Log      zerolog.Logger
}

// All returns the registered adapter set. Registration order carries no
// ordering guarantee downstream; the aggregator settles sources in whatever
// order they finish. Names listed in disabled are skipped.
func All(d Deps, disabled []string) []Source {
	off := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		off[strings.ToLower(strings.TrimSpace(name))] = true
	}

	all := []Source{
		NewVisitKokomo(d),
		NewCityOfKokomo(d),
		NewGreaterKokomo(d, GreaterKokomoEventsURL, "GreaterKokomo"),
		NewGreaterKokomo(d, GreaterKokomoCommunityURL, "GreaterKokomoCommunity"),
		NewTownePost(d),
		NewKokomoPost(d),
		NewKokomoTribune(d),
		NewWWKI(d),
		NewEventbrite(d),
		NewHappeningNext(d),
		NewHowardCountyMuseum(d),
		NewPatch(d),
		NewKHCPL(d),
	}

	enabled := make([]Source, 0, len(all))
	for _, s := range all {
		if off[strings.ToLower(s.Name())] {
			continue
		}
		enabled = append(enabled, s)
	}
	return enabled
}

// splitDateTime splits an ISO-ish datetime string ("2024-10-05T19:00:00")
// into its calendar-date part and a human-readable time of day. Strings
// without a time component pass through with an empty time.
func splitDateTime(s string) (date, timeOfDay string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, "T ")
	// Only split when the part before the separator is a YYYY-MM-DD date;
	// prose dates like "October 5, 2024" pass through untouched.
	if idx != 10 || s[4] != '-' || s[7] != '-' {
		return s, ""
	}

	date = s[:idx]
	rest := strings.TrimSpace(s[idx+1:])
	if len(rest) >= 5 {
		if t, err := time.Parse("15:04", rest[:5]); err == nil {
			return date, t.Format(time.Kitchen)
		}
	}
	return date, ""
}
