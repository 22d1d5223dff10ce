package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clareta27/vinyl-backend/internal/engine"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// SearchInput holds the keyword search query parameters.
type SearchInput struct {
	Query   string `query:"q"       required:"true" minLength:"1" doc:"Search keywords"                                 example:"miles davis kind of blue"`
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)" example:"US"`
	Limit   int    `query:"limit"   minimum:"1"     maximum:"200" doc:"Page size (default 20)"                          example:"20"`
	Offset  int    `query:"offset"  minimum:"0"     doc:"Zero-based result offset"                                      example:"0"`
	Sort    string `query:"sort"    doc:"One of price, -price, newlyListed, endingSoonest; empty for best match" example:"price"`
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body *domain.SearchResult
}

// Search runs a relevance-filtered keyword search.
func (h *DiscoveryHandler) Search(ctx context.Context, in *SearchInput) (*SearchOutput, error) {
	res, err := h.svc.Search(ctx, engine.SearchParams{
		Query:   in.Query,
		Country: in.Country,
		Limit:   in.Limit,
		Offset:  in.Offset,
		Sort:    in.Sort,
	})
	if err != nil {
		return nil, toHTTPError(h.log, "search", err)
	}
	return &SearchOutput{Body: res}, nil
}

// LookupInput holds the barcode lookup parameters.
type LookupInput struct {
	Code    string `path:"code"     minLength:"1" doc:"UPC, EAN or catalog number" example:"0602547288226"`
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)" example:"US"`
}

// LookupOutput is the response body for the lookup endpoint.
type LookupOutput struct {
	Body *domain.LookupResult
}

// Lookup finds listings for a product code, falling back to a keyword
// search when the code search yields nothing.
func (h *DiscoveryHandler) Lookup(ctx context.Context, in *LookupInput) (*LookupOutput, error) {
	res, err := h.svc.Lookup(ctx, in.Code, in.Country)
	if err != nil {
		return nil, toHTTPError(h.log, "lookup", err)
	}
	return &LookupOutput{Body: res}, nil
}

// RegisterSearchRoutes registers the search and lookup endpoints.
func RegisterSearchRoutes(api huma.API, h *DiscoveryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-records",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search record listings",
		Description: "Runs a keyword search against the marketplace and drops listings that are not records.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "lookup-code",
		Method:      http.MethodGet,
		Path:        "/api/v1/lookup/{code}",
		Summary:     "Look up a barcode",
		Description: "Searches by GTIN first and falls back to a relevance-filtered keyword search.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.Lookup)
}
