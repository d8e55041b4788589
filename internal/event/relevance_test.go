package event

import "testing"

func TestKAARelevant(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    string
		want        bool
	}{
		{"art in title", "Art Walk Downtown", "", "", true},
		{"prefix match artist", "Meet the Artist", "", "", true},
		{"gallery in description", "First Friday", "Stroll the gallery district", "", true},
		{"category only", "Fall Showcase", "", "Arts & Culture", true},
		{"full phrase", "Annual Show", "Hosted by the Kokomo Art Association", "", true},
		{"craft fair", "Holiday Craft Fair", "", "", true},
		{"case insensitive", "POTTERY CLASS", "", "", true},
		{"party is not art", "Block Party", "Food trucks and music", "", false},
		{"heart is not art", "Heart Health Walk", "5k for cardiac care", "Health", false},
		{"startup is not studio", "Startup Pitch Night", "", "Business", false},
		{"plain event", "Farmers Market", "Fresh produce weekly", "Food", false},
		{"all empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KAARelevant(tt.title, tt.description, tt.category)
			if got != tt.want {
				t.Errorf("KAARelevant(%q, %q, %q) = %v, want %v",
					tt.title, tt.description, tt.category, got, tt.want)
			}
		})
	}
}
