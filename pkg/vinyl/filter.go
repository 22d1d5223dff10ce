// Package vinyl holds the record-format rules of the discovery service:
// which marketplace titles count as physical music releases, and how a
// keyword is expanded into the spelling variants used for sold-price
// lookups.
package vinyl

import "strings"

// blockTerms mark merchandise and media that is not a music release.
// Any hit rejects the title regardless of allowTerms.
var blockTerms = []string{
	"t-shirt",
	"shirt",
	"hoodie",
	"sweatshirt",
	"poster",
	"funko",
	"figurine",
	"action figure",
	"sticker",
	"keychain",
	"mug",
	"magnet",
	"digital download",
	"mp3",
	"blu-ray",
	"dvd",
	"book",
	"magazine",
	"jersey",
	"lanyard",
	"enamel pin",
	"trading card",
	"nft",
}

// allowTerms are record formats and release qualifiers; a title needs at
// least one.
var allowTerms = []string{
	"vinyl",
	"lp",
	"record",
	"album",
	"cassette",
	"tape",
	"cd",
	"compact disc",
	"limited edition",
	"first press",
	"remaster",
}

// IsRelevant reports whether a listing title looks like a physical music
// release. Matching is case-insensitive substring matching, so "LP" also
// matches inside "2LP".
func IsRelevant(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}

	for _, term := range blockTerms {
		if strings.Contains(t, term) {
			return false
		}
	}

	for _, term := range allowTerms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

// Relevant returns the items whose title passes IsRelevant, preserving
// order.
func Relevant[T any](items []T, title func(*T) string) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if IsRelevant(title(&items[i])) {
			out = append(out, items[i])
		}
	}
	return out
}
