package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/metrics"
	"github.com/clareta27/vinyl-backend/pkg/pricestats"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
	"github.com/clareta27/vinyl-backend/pkg/vinyl"
)

// PriceHistory summarizes up to limit completed sales for one keyword.
// limit defaults to 50 and is capped at 200. When nothing sold the result
// has TotalSold 0, an empty item list and no aggregates.
func (eng *Engine) PriceHistory(
	ctx context.Context,
	query, country string,
	limit int,
) (res *domain.PriceHistory, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: price history query is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	country = eng.country(country)

	ctx, span := eng.startSpan(ctx, "PriceHistory",
		attribute.String("query", query),
		attribute.String("country", country),
		attribute.Int("limit", limit),
	)
	defer func() { endSpan(span, err) }()

	completed, err := eng.ebay.CompletedItems(ctx, ebay.CompletedRequest{
		Keywords: query,
		Country:  country,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching completed sales for %q: %w", query, err)
	}

	sales := ebay.ToSoldRecords(completed)
	sortNewestFirst(sales)
	metrics.SoldRecordsPerRequest.Observe(float64(len(sales)))

	res = &domain.PriceHistory{
		Query:       query,
		Marketplace: ebay.ResolveMarketplace(country).ID,
		TotalSold:   len(sales),
		Items:       sales,
	}
	if s := pricestats.SummarizeWithMedian(pricestats.Prices(sales)); s != nil {
		res.AveragePrice = &s.Average
		res.MedianPrice = s.Median
		res.LowestPrice = &s.Lowest
		res.HighestPrice = &s.Highest
	}
	return res, nil
}

// ChartData fetches completed sales for every spelling variant of query,
// merges them with SaleKey deduplication, and summarizes the trailing
// day windows. Sales are returned newest first.
func (eng *Engine) ChartData(ctx context.Context, query, country string) (res *domain.ChartData, err error) {
	variants := vinyl.QueryVariants(query)
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: chart query is required", ErrInvalidInput)
	}
	country = eng.country(country)

	ctx, span := eng.startSpan(ctx, "ChartData",
		attribute.String("query", variants[0]),
		attribute.String("country", country),
		attribute.Int("variants", len(variants)),
	)
	defer func() { endSpan(span, err) }()

	records, err := fanOut(ctx, eng, "chart", variants,
		func(ctx context.Context, v string) ([]domain.SoldRecord, error) {
			completed, err := eng.ebay.CompletedItems(ctx, ebay.CompletedRequest{
				Keywords: v,
				Country:  country,
				Limit:    eng.variantLimit,
			})
			if err != nil {
				return nil, err
			}
			return ebay.ToSoldRecords(completed), nil
		})
	if err != nil {
		return nil, err
	}

	sales := dedupe(records, SaleKey)
	sortNewestFirst(sales)
	metrics.SoldRecordsPerRequest.Observe(float64(len(sales)))

	return &domain.ChartData{
		Query:        variants[0],
		Marketplace:  ebay.ResolveMarketplace(country).ID,
		Variants:     variants,
		TotalRecords: len(sales),
		Windows:      pricestats.Windows(sales, eng.nowFunc(), eng.windows),
		Sales:        sales,
	}, nil
}

func sortNewestFirst(sales []domain.SoldRecord) {
	slices.SortStableFunc(sales, func(a, b domain.SoldRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
