package vinyl

import (
	"slices"
	"strings"
)

// FormatSuffixes are appended to a keyword to build format-specific
// variants.
var FormatSuffixes = []string{"vinyl", "lp", "record", "cassette"}

// QueryVariants expands a keyword into the spellings sellers commonly use
// for the same release: the original, whitespace removed, spaces as
// hyphens, hyphens as spaces, reversed word order, and the original with
// each of FormatSuffixes appended. Variants are trimmed, empty ones are
// dropped and duplicates are removed case-insensitively, keeping the first.
func QueryVariants(query string) []string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return []string{}
	}

	base := strings.Join(words, " ")

	reversed := slices.Clone(words)
	slices.Reverse(reversed)

	candidates := []string{
		base,
		strings.Join(words, ""),
		strings.Join(words, "-"),
		strings.Join(strings.Fields(strings.ReplaceAll(base, "-", " ")), " "),
		strings.Join(reversed, " "),
	}
	for _, s := range FormatSuffixes {
		candidates = append(candidates, base+" "+s)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		k := strings.ToLower(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
