package sources

import "testing"

func TestPatchParse(t *testing.T) {
	s := NewPatch(testDeps())
	events := s.parse(fixtureDoc(t, "patch.html"))

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.Title != "Community Blood Drive" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Description != "Walk-ins welcome." {
		t.Errorf("description = %q", e.Description)
	}
	if e.StartDate != "2024-11-21" {
		t.Errorf("start_date = %q", e.StartDate)
	}
	if e.Time != "9:00AM" {
		t.Errorf("time = %q", e.Time)
	}
	if e.Venue != "UAW Local 685 Hall" {
		t.Errorf("string location should map to venue, got %q", e.Venue)
	}
	if e.URL != "https://patch.com/indiana/kokomo/calendar/event/blood-drive" {
		t.Errorf("url = %q", e.URL)
	}
	if e.KAARelevant {
		t.Error("blood drive should not be flagged relevant")
	}
}
