package sources

import "testing"

func TestHappeningNextParse(t *testing.T) {
	s := NewHappeningNext(testDeps())
	events := s.parse(fixtureDoc(t, "happeningnext.html"))

	if len(events) != 3 {
		t.Fatalf("expected 3 events (non-event and empty anchors skipped), got %d", len(events))
	}

	first := events[0]
	if first.Title != "Comedy Showcase" {
		t.Errorf("nested title = %q", first.Title)
	}
	if first.StartDate != "November 16, 2024" {
		t.Errorf("start_date = %q", first.StartDate)
	}
	if first.Venue != "Center Stage" {
		t.Errorf("venue = %q", first.Venue)
	}
	if first.URL != "https://happeningnext.com/event/comedy-showcase" {
		t.Errorf("url = %q", first.URL)
	}

	if events[1].Title != "Winter Farmers Market" {
		t.Errorf("title-attribute fallback = %q", events[1].Title)
	}
	if events[2].Title != "Friends of the Library Book Sale" {
		t.Errorf("anchor-text fallback = %q", events[2].Title)
	}
}
