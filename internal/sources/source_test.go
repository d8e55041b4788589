package sources

import "testing"

func TestAll(t *testing.T) {
	all := All(testDeps(), nil)
	if len(all) != 13 {
		t.Fatalf("expected 13 registered sources, got %d", len(all))
	}

	seen := make(map[string]bool, len(all))
	for _, s := range all {
		if s.Name() == "" || s.URL() == "" {
			t.Errorf("source %T has empty name or URL", s)
		}
		if seen[s.Name()] {
			t.Errorf("duplicate source name %q", s.Name())
		}
		seen[s.Name()] = true
	}
}

func TestAllDisabled(t *testing.T) {
	all := All(testDeps(), []string{" eventbrite ", "WWKI"})
	if len(all) != 11 {
		t.Fatalf("expected 11 sources with 2 disabled, got %d", len(all))
	}
	for _, s := range all {
		if s.Name() == "Eventbrite" || s.Name() == "WWKI" {
			t.Errorf("disabled source %q still registered", s.Name())
		}
	}
}

func TestSplitDateTime(t *testing.T) {
	tests := []struct {
		input    string
		wantDate string
		wantTime string
	}{
		{"2024-10-05T19:00:00", "2024-10-05", "7:00PM"},
		{"2024-10-05 09:30:00", "2024-10-05", "9:30AM"},
		{"2024-10-05", "2024-10-05", ""},
		{"October 5, 2024", "October 5, 2024", ""},
		{"Saturday, October 5, 2024", "Saturday, October 5, 2024", ""},
		{"2024-10-05Tlater", "2024-10-05", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		gotDate, gotTime := splitDateTime(tt.input)
		if gotDate != tt.wantDate || gotTime != tt.wantTime {
			t.Errorf("splitDateTime(%q) = (%q, %q), want (%q, %q)",
				tt.input, gotDate, gotTime, tt.wantDate, tt.wantTime)
		}
	}
}
