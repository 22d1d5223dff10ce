// Package pricestats summarizes sold-price series.
package pricestats

import (
	"math"
	"slices"
	"time"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// DefaultWindows are the trailing day windows reported for chart data.
var DefaultWindows = []int{30, 60, 90}

// Summarize returns count, average (rounded to cents), lowest and highest
// of prices, or nil when prices is empty. Median is left unset.
func Summarize(prices []float64) *domain.StatSummary {
	if len(prices) == 0 {
		return nil
	}

	s := &domain.StatSummary{
		Count:   len(prices),
		Lowest:  prices[0],
		Highest: prices[0],
	}
	var sum float64
	for _, p := range prices {
		sum += p
		s.Lowest = min(s.Lowest, p)
		s.Highest = max(s.Highest, p)
	}
	s.Average = Round2(sum / float64(len(prices)))
	return s
}

// SummarizeWithMedian is Summarize plus the median.
func SummarizeWithMedian(prices []float64) *domain.StatSummary {
	s := Summarize(prices)
	if s != nil {
		m := Median(prices)
		s.Median = &m
	}
	return s
}

// Median returns the middle value of prices, or the mean of the two middle
// values for an even count. It returns 0 for an empty series and does not
// modify prices.
func Median(prices []float64) float64 {
	n := len(prices)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(prices)
	slices.Sort(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Prices extracts the price series from sales.
func Prices(sales []domain.SoldRecord) []float64 {
	out := make([]float64, 0, len(sales))
	for i := range sales {
		out = append(out, sales[i].Price)
	}
	return out
}

// Window summarizes the sales whose timestamp falls within the last days
// days before now, or returns nil when none do.
func Window(sales []domain.SoldRecord, now time.Time, days int) *domain.StatSummary {
	cutoff := now.AddDate(0, 0, -days)

	var prices []float64
	for i := range sales {
		if !sales[i].Timestamp.Before(cutoff) {
			prices = append(prices, sales[i].Price)
		}
	}
	return Summarize(prices)
}

// Windows computes Window for each entry of days. Every window filters
// the full sales set independently.
func Windows(sales []domain.SoldRecord, now time.Time, days []int) []domain.WindowSummary {
	out := make([]domain.WindowSummary, 0, len(days))
	for _, d := range days {
		out = append(out, domain.WindowSummary{Days: d, Summary: Window(sales, now, d)})
	}
	return out
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
