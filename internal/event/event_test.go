package event

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	e := Normalize("VisitKokomo", Raw{})

	if e.Source != "VisitKokomo" {
		t.Errorf("expected source 'VisitKokomo', got %q", e.Source)
	}
	if e.Category != DefaultCategory {
		t.Errorf("expected default category %q, got %q", DefaultCategory, e.Category)
	}
	if e.KAARelevant {
		t.Error("kaa_relevant should default to false")
	}
	for name, value := range map[string]string{
		"title":       e.Title,
		"description": e.Description,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"time":        e.Time,
		"venue":       e.Venue,
		"address":     e.Address,
		"url":         e.URL,
	} {
		if value != "" {
			t.Errorf("expected empty %s, got %q", name, value)
		}
	}
}

func TestNormalizeFields(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want Event
	}{
		{
			name: "trims whitespace",
			raw: Raw{
				"title": "  Fall Festival  ",
				"venue": "\tDowntown Kokomo\n",
			},
			want: Event{Title: "Fall Festival", Venue: "Downtown Kokomo", Category: DefaultCategory, Source: "Test"},
		},
		{
			name: "keeps provided category",
			raw:  Raw{"title": "Jazz Night", "category": "Music"},
			want: Event{Title: "Jazz Night", Category: "Music", Source: "Test"},
		},
		{
			name: "blank category falls back to default",
			raw:  Raw{"title": "Jazz Night", "category": "   "},
			want: Event{Title: "Jazz Night", Category: DefaultCategory, Source: "Test"},
		},
		{
			name: "surprising types coerce to zero values",
			raw: Raw{
				"title":        42,
				"description":  nil,
				"start_date":   []string{"2024-10-05"},
				"kaa_relevant": "yes",
			},
			want: Event{Category: DefaultCategory, Source: "Test"},
		},
		{
			name: "kaa_relevant strict bool passes through",
			raw:  Raw{"title": "Gallery Walk", "kaa_relevant": true},
			want: Event{Title: "Gallery Walk", Category: DefaultCategory, Source: "Test", KAARelevant: true},
		},
		{
			name: "source never read from the bag",
			raw:  Raw{"title": "X", "source": "Spoofed"},
			want: Event{Title: "X", Category: DefaultCategory, Source: "Test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize("Test", tt.raw)
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
