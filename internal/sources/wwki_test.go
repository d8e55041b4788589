package sources

import (
	"testing"
	"time"

	"github.com/apognu/gocal"
)

func TestWWKIParse(t *testing.T) {
	timed := time.Date(2024, 11, 9, 18, 30, 0, 0, time.UTC)
	timedEnd := timed.Add(2 * time.Hour)
	allDay := time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC)

	components := []gocal.Event{
		{
			Summary:     "Art in the Park",
			Description: "Outdoor painting showcase",
			Location:    "Highland Park",
			Start:       &timed,
			End:         &timedEnd,
			URL:         "https://www.wwki.com/events/art-in-the-park",
		},
		{
			Summary:  "County Fair",
			Location: "Fairgrounds",
			Start:    &allDay,
		},
		{
			Summary: "Dateless Announcement",
		},
	}

	s := NewWWKI(testDeps())
	events := s.parse(components)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "Art in the Park" {
		t.Errorf("title = %q", first.Title)
	}
	if first.StartDate != "2024-11-09" {
		t.Errorf("start_date = %q", first.StartDate)
	}
	if first.Time != "6:30PM" {
		t.Errorf("time = %q", first.Time)
	}
	if first.EndDate != "2024-11-09" {
		t.Errorf("end_date = %q", first.EndDate)
	}
	if first.Venue != "Highland Park" {
		t.Errorf("venue = %q", first.Venue)
	}
	if first.URL != "https://www.wwki.com/events/art-in-the-park" {
		t.Errorf("url = %q", first.URL)
	}
	if !first.KAARelevant {
		t.Error("painting showcase should be flagged relevant")
	}

	second := events[1]
	if second.StartDate != "2024-11-16" {
		t.Errorf("start_date = %q", second.StartDate)
	}
	if second.Time != "" {
		t.Errorf("all-day event should carry no time, got %q", second.Time)
	}
	if second.URL != WWKIFeedURL {
		t.Errorf("linkless component should fall back to the feed URL, got %q", second.URL)
	}

	third := events[2]
	if third.StartDate != "" || third.EndDate != "" {
		t.Errorf("dateless component should keep empty dates, got %q / %q", third.StartDate, third.EndDate)
	}
}
