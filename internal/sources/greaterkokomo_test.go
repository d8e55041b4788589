package sources

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestGreaterKokomoParse(t *testing.T) {
	s := NewGreaterKokomo(testDeps(), GreaterKokomoEventsURL, "GreaterKokomo")
	events, err := s.parse(fixtureDoc(t, "greaterkokomo.html"))
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "Chamber Luncheon" {
		t.Errorf("title = %q", first.Title)
	}
	if first.StartDate != "2024-11-20" {
		t.Errorf("start_date = %q", first.StartDate)
	}
	if first.Time != "11:30 AM" {
		t.Errorf("time = %q", first.Time)
	}
	if first.Venue != "Kokomo Event Center" {
		t.Errorf("venue = %q", first.Venue)
	}
	if first.Category != "Business" {
		t.Errorf("category = %q", first.Category)
	}
	if first.URL != "https://www.greaterkokomo.com/events/chamber-luncheon" {
		t.Errorf("url = %q", first.URL)
	}

	second := events[1]
	if second.Title != "Gallery Walk {Downtown}" {
		t.Errorf("brace-in-string title survived extraction? got %q", second.Title)
	}
	if second.Category != "General" {
		t.Errorf("blank category should default, got %q", second.Category)
	}
	if second.URL != GreaterKokomoEventsURL {
		t.Errorf("linkless item should fall back to the page URL, got %q", second.URL)
	}
	if !second.KAARelevant {
		t.Error("gallery walk should be flagged relevant")
	}
}

func TestGreaterKokomoParseMarkerMissing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><script>var x = 1;</script></head><body></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	s := NewGreaterKokomo(testDeps(), GreaterKokomoEventsURL, "GreaterKokomo")
	events, err := s.parse(doc)
	if err != nil {
		t.Fatalf("missing marker should not be an error, got %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestGreaterKokomoParseBadPayload(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(
		`<html><head><script>window.__INITIAL_STATE__ = {"events": {"items": "oops"}};</script></head></html>`)))
	if err != nil {
		t.Fatal(err)
	}

	s := NewGreaterKokomo(testDeps(), GreaterKokomoEventsURL, "GreaterKokomo")
	if _, err := s.parse(doc); err == nil {
		t.Fatal("expected error for unparseable state payload")
	}
}

func TestGreaterKokomoDistinctNames(t *testing.T) {
	d := testDeps()
	a := NewGreaterKokomo(d, GreaterKokomoEventsURL, "GreaterKokomo")
	b := NewGreaterKokomo(d, GreaterKokomoCommunityURL, "GreaterKokomoCommunity")
	if a.Name() == b.Name() || a.URL() == b.URL() {
		t.Errorf("the two chamber calendars must differ: %q/%q vs %q/%q",
			a.Name(), a.URL(), b.Name(), b.URL())
	}
}
