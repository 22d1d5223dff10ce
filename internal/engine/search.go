package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// SortOrders are the accepted search sort values. The empty string keeps
// the marketplace's best-match order.
var SortOrders = []string{"", "price", "-price", "newlyListed", "endingSoonest"}

// SearchParams are the inputs of a keyword search.
type SearchParams struct {
	Query   string
	Country string
	Limit   int
	Offset  int
	Sort    string
}

// Search runs a single keyword search and returns the relevant listings.
// Total and HasMore describe the upstream result set before filtering.
func (eng *Engine) Search(ctx context.Context, p SearchParams) (res *domain.SearchResult, err error) {
	query := strings.TrimSpace(p.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if !slices.Contains(SortOrders, p.Sort) {
		return nil, fmt.Errorf("%w: unsupported sort %q", ErrInvalidInput, p.Sort)
	}
	if p.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)
	country := eng.country(p.Country)

	ctx, span := eng.startSpan(ctx, "Search",
		attribute.String("query", query),
		attribute.String("country", country),
	)
	defer func() { endSpan(span, err) }()

	resp, err := eng.ebay.Search(ctx, ebay.SearchRequest{
		Query:   query,
		Country: country,
		Limit:   limit,
		Offset:  p.Offset,
		Sort:    p.Sort,
	})
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	return &domain.SearchResult{
		Query:       query,
		Marketplace: resp.Marketplace,
		Total:       resp.Total,
		Offset:      p.Offset,
		Limit:       limit,
		HasMore:     resp.HasMore,
		Items:       ebay.ToItems(relevant(resp.Items)),
	}, nil
}

// Lookup finds listings for a barcode. It searches by GTIN first and
// returns those listings unfiltered; when that finds nothing or the
// marketplace rejects the code, it falls back to a keyword search for the
// code with the relevance filter applied.
func (eng *Engine) Lookup(ctx context.Context, code, country string) (res *domain.LookupResult, err error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: lookup code is required", ErrInvalidInput)
	}
	country = eng.country(country)
	mp := ebay.ResolveMarketplace(country)

	ctx, span := eng.startSpan(ctx, "Lookup",
		attribute.String("code", code),
		attribute.String("country", country),
	)
	defer func() { endSpan(span, err) }()

	resp, err := eng.ebay.Search(ctx, ebay.SearchRequest{
		Country: country,
		Limit:   defaultLookupLimit,
		Extra:   map[string]string{"gtin": code},
	})
	switch {
	case err == nil && resp != nil && len(resp.Items) > 0:
		return &domain.LookupResult{
			Code:        code,
			Marketplace: mp.ID,
			Source:      domain.LookupSourceCode,
			Items:       ebay.ToItems(resp.Items),
		}, nil
	case err != nil && !ebay.IsUpstreamError(err):
		return nil, fmt.Errorf("looking up code %q: %w", code, err)
	case err != nil:
		eng.log.Info("code lookup rejected, falling back to keyword search",
			"code", code, "error", err)
	}

	resp, err = eng.ebay.Search(ctx, ebay.SearchRequest{
		Query:   code,
		Country: country,
		Limit:   defaultLookupLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("keyword fallback for code %q: %w", code, err)
	}

	return &domain.LookupResult{
		Code:        code,
		Marketplace: mp.ID,
		Source:      domain.LookupSourceKeyword,
		Items:       ebay.ToItems(relevant(resp.Items)),
	}, nil
}
