package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/metrics"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
	"github.com/clareta27/vinyl-backend/pkg/vinyl"
)

// TitleKey is the identity used to deduplicate listings across queries:
// the exact title. Listings whose titles differ only cosmetically are kept
// apart; the first one seen wins.
func TitleKey(it *domain.Item) string {
	return it.Title
}

// SaleKey is the identity used to deduplicate sold records across query
// variants: the (timestamp, price) pair. The first record seen wins.
func SaleKey(r *domain.SoldRecord) string {
	return r.Timestamp.UTC().Format(time.RFC3339Nano) + "|" + strconv.FormatFloat(r.Price, 'f', -1, 64)
}

// Aggregate runs one Browse search per query concurrently, keeps the
// relevant listings, normalizes them and deduplicates by TitleKey. Results
// are merged in query order. A failing query is logged and skipped; only
// an authentication failure or a done context fails the whole call.
func (eng *Engine) Aggregate(ctx context.Context, queries []string, country string) ([]domain.Item, error) {
	items, err := fanOut(ctx, eng, "aggregate", queries,
		func(ctx context.Context, q string) ([]domain.Item, error) {
			resp, err := eng.ebay.Search(ctx, ebay.SearchRequest{
				Query:   q,
				Country: country,
				Limit:   eng.perQueryLimit,
			})
			if err != nil {
				return nil, err
			}
			return ebay.ToItems(relevant(resp.Items)), nil
		})
	if err != nil {
		return nil, err
	}

	return dedupe(items, TitleKey), nil
}

// fanOut calls fetch for every query with at most eng.fanoutLimit in
// flight and concatenates the results in query order. Members never
// cancel each other.
func fanOut[T any](
	ctx context.Context,
	eng *Engine,
	op string,
	queries []string,
	fetch func(context.Context, string) ([]T, error),
) ([]T, error) {
	results := make([][]T, len(queries))
	errs := make([]error, len(queries))

	var g errgroup.Group
	g.SetLimit(eng.fanoutLimit)
	for i, q := range queries {
		g.Go(func() error {
			results[i], errs[i] = fetch(ctx, q)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // members always return nil

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s fan-out: %w", op, err)
	}

	var merged []T
	for i, err := range errs {
		if err != nil {
			if errors.Is(err, ebay.ErrAuthFailure) {
				return nil, fmt.Errorf("%s query %q: %w", op, queries[i], err)
			}
			eng.log.Warn("fan-out query failed, skipping",
				"operation", op,
				"query", queries[i],
				"error", err,
			)
			metrics.FanoutQueryFailuresTotal.WithLabelValues(op).Inc()
			continue
		}
		merged = append(merged, results[i]...)
	}
	return merged, nil
}

func dedupe[T any](items []T, key func(*T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for i := range items {
		k := key(&items[i])
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, items[i])
	}
	return out
}

func relevant(items []ebay.ItemSummary) []ebay.ItemSummary {
	return vinyl.Relevant(items, func(it *ebay.ItemSummary) string { return it.Title })
}
