package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	score "github.com/clareta27/vinyl-backend/pkg/scorer"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// Trending aggregates the trending keywords, ranks the merged listings by
// popularity and returns the top limit.
func (eng *Engine) Trending(ctx context.Context, country string, limit int) (res *domain.TrendingResult, err error) {
	country = eng.country(country)
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	ctx, span := eng.startSpan(ctx, "Trending",
		attribute.String("country", country),
		attribute.Int("limit", limit),
	)
	defer func() { endSpan(span, err) }()

	items, err := eng.Aggregate(ctx, eng.trendingQueries, country)
	if err != nil {
		return nil, err
	}

	scored := score.Popularity(items, eng.jitter)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	eng.log.Debug("trending computed",
		"country", country,
		"candidates", len(items),
		"returned", len(scored),
	)

	return &domain.TrendingResult{
		Country:     country,
		Marketplace: ebay.ResolveMarketplace(country).ID,
		Count:       len(scored),
		Items:       scored,
	}, nil
}
