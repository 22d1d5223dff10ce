// Package score ranks canonical items for the trending and recommendation
// listings. Both policies add a small random jitter so equal-looking items
// do not always come back in the same order; the jitter source is
// injectable so tests can pin it.
package score

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// Scoring constants.
const (
	PopularityJitter     = 10.0
	ArtistMatchPoints    = 20.0
	PriceSimilarityMax   = 15.0
	PriceSimilarityScale = 20.0
	SharedWordPoints     = 2.0
	RecommendJitter      = 3.0
	minBaseWordLen       = 3
)

// Jitter yields values in [0, 1).
type Jitter interface {
	Float64() float64
}

// JitterFunc adapts a function to Jitter.
type JitterFunc func() float64

// Float64 calls f.
func (f JitterFunc) Float64() float64 { return f() }

// DefaultJitter draws from the global math/rand/v2 source, which is safe
// for concurrent use.
var DefaultJitter Jitter = JitterFunc(rand.Float64)

// Popularity scores each item as its price plus U[0,10) and returns them
// sorted by descending score. Items without a price score from 0.
func Popularity(items []domain.Item, j Jitter) []domain.ScoredItem {
	out := make([]domain.ScoredItem, 0, len(items))
	for i := range items {
		out = append(out, domain.ScoredItem{
			Item:  items[i],
			Score: items[i].PriceValue() + j.Float64()*PopularityJitter,
		})
	}
	sortDesc(out)
	return out
}

// Base is the reference a recommendation is scored against. A zero Price
// disables the price-similarity term and an empty Artist disables the
// artist term.
type Base struct {
	Artist string
	Price  float64
	Title  string
}

// BaseFromItem builds a Base from a canonical item.
func BaseFromItem(it *domain.Item) Base {
	return Base{Artist: it.ArtistName(), Price: it.PriceValue(), Title: it.Title}
}

// Recommend scores candidates against base and returns them sorted by
// descending score. Each score is Similarity plus U[0,3).
func Recommend(base Base, items []domain.Item, j Jitter) []domain.ScoredItem {
	words := baseWords(base.Title)

	out := make([]domain.ScoredItem, 0, len(items))
	for i := range items {
		out = append(out, domain.ScoredItem{
			Item:  items[i],
			Score: similarity(base, words, &items[i]) + j.Float64()*RecommendJitter,
		})
	}
	sortDesc(out)
	return out
}

// Similarity is the deterministic part of the recommendation score:
//
//	20 when the artists match case-insensitively
//	max(0, 15 - |price - base.Price| / base.Price * 20) when base.Price > 0
//	2 per candidate title word found among the base title's words
//
// Base title words shorter than three characters are ignored.
func Similarity(base Base, it *domain.Item) float64 {
	return similarity(base, baseWords(base.Title), it)
}

func similarity(base Base, words map[string]struct{}, it *domain.Item) float64 {
	var s float64

	if base.Artist != "" && strings.EqualFold(base.Artist, it.ArtistName()) {
		s += ArtistMatchPoints
	}

	if base.Price > 0 {
		diff := math.Abs(it.PriceValue() - base.Price)
		s += math.Max(0, PriceSimilarityMax-diff/base.Price*PriceSimilarityScale)
	}

	for _, w := range strings.Fields(strings.ToLower(it.Title)) {
		if _, ok := words[w]; ok {
			s += SharedWordPoints
		}
	}

	return s
}

func baseWords(title string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(title))
	words := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) >= minBaseWordLen {
			words[w] = struct{}{}
		}
	}
	return words
}

func sortDesc(items []domain.ScoredItem) {
	slices.SortStableFunc(items, func(a, b domain.ScoredItem) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
