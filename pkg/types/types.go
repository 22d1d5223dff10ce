// Package domain defines the core business types for the vinyl discovery service.
package domain

import (
	"strings"
	"time"
)

// Item is the canonical shape of a marketplace listing after normalization.
// Optional upstream fields are nil when the marketplace did not supply them.
type Item struct {
	ItemID    string   `json:"item_id"   example:"v1|125551234567|0"`
	Title     string   `json:"title"     example:"Pink Floyd - The Dark Side Of The Moon LP Vinyl"`
	Artist    *string  `json:"artist"    example:"Pink Floyd"`
	Price     *float64 `json:"price"     example:"29.99"`
	Image     *string  `json:"image"     example:"https://i.ebayimg.com/images/g/abc/s-l500.jpg"`
	URL       string   `json:"url"       example:"https://www.ebay.com/itm/125551234567"`
	Condition *string  `json:"condition" example:"Used"`
}

// PriceValue returns the item price, or 0 when the price is unknown.
func (i *Item) PriceValue() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// ArtistName returns the derived artist, or "" when none could be derived.
func (i *Item) ArtistName() string {
	if i.Artist == nil {
		return ""
	}
	return *i.Artist
}

// ScoredItem is an Item with a per-request ranking score. The meaning of
// Score depends on the operation that produced it (popularity for trending,
// similarity for recommendations).
type ScoredItem struct {
	Item
	Score float64 `json:"score" example:"34.5"`
}

// SoldRecord is a completed listing that ended with a sale.
type SoldRecord struct {
	Price     float64   `json:"price"     example:"24.5"`
	Timestamp time.Time `json:"timestamp" example:"2026-09-01T18:04:11Z"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Image     *string   `json:"image"`
	Condition *string   `json:"condition"`
}

// StatSummary aggregates a price series. Median is only populated by
// operations that report it.
type StatSummary struct {
	Count   int      `json:"count"            example:"12"`
	Average float64  `json:"average"          example:"27.48"`
	Lowest  float64  `json:"lowest"           example:"9.99"`
	Highest float64  `json:"highest"          example:"64"`
	Median  *float64 `json:"median,omitempty" example:"25"`
}

// WindowSummary is a StatSummary over sales inside the trailing Days window.
// Summary is nil when no sales fall inside the window.
type WindowSummary struct {
	Days    int          `json:"days"    example:"30"`
	Summary *StatSummary `json:"summary"`
}

// TrendingResult is the payload of the trending listing.
type TrendingResult struct {
	Country     string       `json:"country"     example:"US"`
	Marketplace string       `json:"marketplace" example:"EBAY_US"`
	Count       int          `json:"count"       example:"20"`
	Items       []ScoredItem `json:"items"`
}

// SearchResult is the payload of a keyword search.
type SearchResult struct {
	Query       string `json:"query"       example:"miles davis kind of blue"`
	Marketplace string `json:"marketplace" example:"EBAY_US"`
	Total       int    `json:"total"       example:"312"`
	Offset      int    `json:"offset"      example:"0"`
	Limit       int    `json:"limit"       example:"20"`
	HasMore     bool   `json:"has_more"    example:"true"`
	Items       []Item `json:"items"`
}

// LookupSource records which upstream strategy produced a lookup result.
type LookupSource string

// Lookup source constants.
const (
	LookupSourceCode    LookupSource = "code"
	LookupSourceKeyword LookupSource = "keyword"
)

// LookupResult is the payload of a barcode/code lookup.
type LookupResult struct {
	Code        string       `json:"code"        example:"0602547288226"`
	Marketplace string       `json:"marketplace" example:"EBAY_US"`
	Source      LookupSource `json:"source"      example:"code"`
	Items       []Item       `json:"items"`
}

// RecommendationResult is the payload of a similarity recommendation.
type RecommendationResult struct {
	Base  *Item        `json:"base"`
	Query string       `json:"query" example:"Pink Floyd"`
	Items []ScoredItem `json:"items"`
}

// PriceHistory is the payload of a single-keyword price history. Aggregates
// are nil when no completed sales were found.
type PriceHistory struct {
	Query        string       `json:"query"                   example:"radiohead ok computer"`
	Marketplace  string       `json:"marketplace"             example:"EBAY_US"`
	TotalSold    int          `json:"total_sold"              example:"37"`
	AveragePrice *float64     `json:"average_price,omitempty" example:"31.2"`
	MedianPrice  *float64     `json:"median_price,omitempty"  example:"29.99"`
	LowestPrice  *float64     `json:"lowest_price,omitempty"  example:"12"`
	HighestPrice *float64     `json:"highest_price,omitempty" example:"85"`
	Items        []SoldRecord `json:"items"`
}

// ChartData is the payload of the multi-variant sold price chart.
type ChartData struct {
	Query        string          `json:"query"         example:"pink floyd"`
	Marketplace  string          `json:"marketplace"   example:"EBAY_US"`
	Variants     []string        `json:"variants"`
	TotalRecords int             `json:"total_records" example:"240"`
	Windows      []WindowSummary `json:"windows"`
	Sales        []SoldRecord    `json:"sales"`
}

// Window returns the summary for the given window length, or nil when the
// window was not computed or holds no sales.
func (c *ChartData) Window(days int) *StatSummary {
	for i := range c.Windows {
		if c.Windows[i].Days == days {
			return c.Windows[i].Summary
		}
	}
	return nil
}

// StringPtr returns a pointer to the trimmed string, or nil when it is empty.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
