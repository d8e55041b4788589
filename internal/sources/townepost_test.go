package sources

import "testing"

func TestTownePostParse(t *testing.T) {
	s := NewTownePost(testDeps())
	events := s.parse(fixtureDoc(t, "townepost.html"))

	if len(events) != 2 {
		t.Fatalf("expected 2 events (short rows skipped), got %d", len(events))
	}

	first := events[0]
	if first.Title != "Fall Festival" {
		t.Errorf("title = %q", first.Title)
	}
	if first.StartDate != "October 5, 2024" {
		t.Errorf("start_date = %q", first.StartDate)
	}
	if first.Venue != "Downtown Kokomo" {
		t.Errorf("venue = %q", first.Venue)
	}
	if first.URL != TownePostURL {
		t.Errorf("url = %q", first.URL)
	}

	if events[1].Title != "Harvest Dinner" {
		t.Errorf("second title = %q", events[1].Title)
	}
}
