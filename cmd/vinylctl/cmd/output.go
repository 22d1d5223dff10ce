package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	apiclient "github.com/clareta27/vinyl-backend/internal/api/client"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemsTable(w io.Writer, items []domain.Item) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tARTIST\tPRICE\tCONDITION\n")
	for i := range items {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			items[i].ItemID,
			truncate(items[i].Title, 50),
			orDash(items[i].Artist),
			price(items[i].Price),
			orDash(items[i].Condition),
		)
	}
	return tw.finish()
}

func printScoredTable(w io.Writer, items []domain.ScoredItem) error {
	tw := newTabWriter(w)
	tw.writef("SCORE\tID\tTITLE\tARTIST\tPRICE\n")
	for i := range items {
		tw.writef("%.1f\t%s\t%s\t%s\t%s\n",
			items[i].Score,
			items[i].ItemID,
			truncate(items[i].Title, 50),
			orDash(items[i].Artist),
			price(items[i].Price),
		)
	}
	return tw.finish()
}

func printSalesTable(w io.Writer, sales []domain.SoldRecord) error {
	tw := newTabWriter(w)
	tw.writef("SOLD\tPRICE\tTITLE\n")
	for i := range sales {
		tw.writef("%s\t%.2f\t%s\n",
			sales[i].Timestamp.Format(time.DateOnly),
			sales[i].Price,
			truncate(sales[i].Title, 60),
		)
	}
	return tw.finish()
}

func printHistorySummary(w io.Writer, h *domain.PriceHistory) error {
	tw := newTabWriter(w)
	tw.writef("Query:\t%s\n", h.Query)
	tw.writef("Marketplace:\t%s\n", h.Marketplace)
	tw.writef("Sold:\t%d\n", h.TotalSold)
	tw.writef("Average:\t%s\n", price(h.AveragePrice))
	tw.writef("Median:\t%s\n", price(h.MedianPrice))
	tw.writef("Lowest:\t%s\n", price(h.LowestPrice))
	tw.writef("Highest:\t%s\n", price(h.HighestPrice))
	return tw.finish()
}

func printWindowsTable(w io.Writer, windows []domain.WindowSummary) error {
	tw := newTabWriter(w)
	tw.writef("WINDOW\tSALES\tAVG\tLOW\tHIGH\n")
	for i := range windows {
		s := windows[i].Summary
		if s == nil {
			tw.writef("%dd\t0\t-\t-\t-\n", windows[i].Days)
			continue
		}
		tw.writef("%dd\t%d\t%.2f\t%.2f\t%.2f\n",
			windows[i].Days, s.Count, s.Average, s.Lowest, s.Highest)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	if q.DailyLimit == 0 {
		tw.writef("Limit:\tunlimited\n")
	} else {
		tw.writef("Limit:\t%d\n", q.DailyLimit)
		tw.writef("Remaining:\t%d\n", q.Remaining)
	}
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Resets:\t%s\n", q.ResetAt.Format(time.RFC3339))
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func price(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *p)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
