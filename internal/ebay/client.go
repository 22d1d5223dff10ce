// Package ebay provides clients for the eBay Browse and Finding APIs,
// abstracted behind interfaces for testability. Responses are cached in a
// shared result cache and every upstream call is authorized with the
// process-wide access token from a TokenProvider.
package ebay

import (
	"context"
)

// SearchRequest defines the parameters for a Browse item search.
type SearchRequest struct {
	Query   string
	Country string
	Limit   int
	Offset  int
	Sort    string // "price", "-price", "newlyListed", "endingSoonest"
	// Extra holds additional query parameters passed through verbatim,
	// e.g. "gtin" or "filter".
	Extra map[string]string
}

// SearchResponse holds the results of a Browse item search.
type SearchResponse struct {
	Marketplace string
	Items       []ItemSummary
	Total       int
	Offset      int
	Limit       int
	HasMore     bool
}

// CompletedRequest defines the parameters for a completed-listings query.
type CompletedRequest struct {
	Keywords string
	Country  string
	Limit    int
}

// EbayClient defines the interface for interacting with the eBay APIs.
type EbayClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	GetItem(ctx context.Context, itemID, country string) (*ItemSummary, error)
	CompletedItems(ctx context.Context, req CompletedRequest) ([]CompletedItem, error)
}

// TokenProvider defines the interface for obtaining OAuth2 access tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
