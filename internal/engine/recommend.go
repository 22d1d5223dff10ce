package engine

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	score "github.com/clareta27/vinyl-backend/pkg/scorer"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// RecommendParams are the inputs of a recommendation. At least one of
// ItemID and Query is required.
type RecommendParams struct {
	ItemID  string
	Query   string
	Country string
	Limit   int
}

// Recommend finds listings similar to a base item, a free-text query, or
// both. With an item id the base is that item's detail; the candidate pool
// is aggregated from the query (or the base artist, or the base title)
// plus the base artist. The base item never recommends itself.
func (eng *Engine) Recommend(ctx context.Context, p RecommendParams) (res *domain.RecommendationResult, err error) {
	itemID := strings.TrimSpace(p.ItemID)
	query := strings.TrimSpace(p.Query)
	if itemID == "" && query == "" {
		return nil, fmt.Errorf("%w: item_id or q is required", ErrInvalidInput)
	}
	country := eng.country(p.Country)
	limit := p.Limit
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	ctx, span := eng.startSpan(ctx, "Recommend",
		attribute.String("item_id", itemID),
		attribute.String("query", query),
		attribute.String("country", country),
	)
	defer func() { endSpan(span, err) }()

	var baseItem *domain.Item
	if itemID != "" {
		raw, err := eng.ebay.GetItem(ctx, itemID, country)
		if err != nil {
			return nil, fmt.Errorf("fetching base item %q: %w", itemID, err)
		}
		it := ebay.ToItem(raw)
		baseItem = &it
	}

	base := score.Base{Title: query}
	queries := []string{query}
	if baseItem != nil {
		base = score.BaseFromItem(baseItem)
		artist := baseItem.ArtistName()
		if query == "" {
			queries[0] = artist
			if artist == "" {
				queries[0] = baseItem.Title
			}
		}
		if artist != "" && !strings.EqualFold(artist, queries[0]) {
			queries = append(queries, artist)
		}
	}

	items, err := eng.Aggregate(ctx, queries, country)
	if err != nil {
		return nil, err
	}

	if baseItem != nil {
		items = excludeItem(items, baseItem.ItemID)
	}

	scored := score.Recommend(base, items, eng.jitter)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return &domain.RecommendationResult{
		Base:  baseItem,
		Query: queries[0],
		Items: scored,
	}, nil
}

func excludeItem(items []domain.Item, id string) []domain.Item {
	out := items[:0:0]
	for i := range items {
		if items[i].ItemID != id {
			out = append(out, items[i])
		}
	}
	return out
}
