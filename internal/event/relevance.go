package event

import "strings"

// kaaKeywords are the terms that mark an event as relevant to the Kokomo Art
// Association. Single words match on word prefix ("art" covers "artist",
// "artisan") so that "party" or "heart" do not; phrases match as substrings.
var kaaKeywords = []string{
	"art",
	"gallery",
	"galleries",
	"exhibit",
	"painting",
	"sculpture",
	"pottery",
	"ceramic",
	"photography",
	"craft",
	"mural",
	"studio",
	"kokomo art association",
}

// KAARelevant reports whether an event looks relevant to the Kokomo Art
// Association. Adapters call this when building the raw field bag; the
// normalizer itself only coerces the flag.
func KAARelevant(title, description, category string) bool {
	haystack := strings.ToLower(title + " " + description + " " + category)
	words := strings.FieldsFunc(haystack, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	for _, kw := range kaaKeywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(haystack, kw) {
				return true
			}
			continue
		}
		for _, w := range words {
			if strings.HasPrefix(w, kw) {
				return true
			}
		}
	}
	return false
}
