package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// SearchParams defines query parameters for a keyword search.
type SearchParams struct {
	Query   string
	Country string
	Limit   int
	Offset  int
	Sort    string
}

// RecommendParams defines the base of a recommendation request.
type RecommendParams struct {
	ItemID  string
	Query   string
	Country string
	Limit   int
}

// Quota is the daily upstream call budget reported by the server.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// Trending returns the trending listing for a country.
func (c *Client) Trending(ctx context.Context, country string, limit int) (*domain.TrendingResult, error) {
	q := url.Values{}
	setString(q, "country", country)
	setInt(q, "limit", limit)

	var resp domain.TrendingResult
	if err := c.get(ctx, "/api/v1/trending", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a keyword search.
func (c *Client) Search(ctx context.Context, p *SearchParams) (*domain.SearchResult, error) {
	q := url.Values{}
	q.Set("q", p.Query)
	setString(q, "country", p.Country)
	setInt(q, "limit", p.Limit)
	setInt(q, "offset", p.Offset)
	setString(q, "sort", p.Sort)

	var resp domain.SearchResult
	if err := c.get(ctx, "/api/v1/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Lookup finds listings for a barcode or catalog number.
func (c *Client) Lookup(ctx context.Context, code, country string) (*domain.LookupResult, error) {
	q := url.Values{}
	setString(q, "country", country)

	var resp domain.LookupResult
	if err := c.get(ctx, "/api/v1/lookup/"+url.PathEscape(code), q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommend returns listings similar to an item or query.
func (c *Client) Recommend(ctx context.Context, p *RecommendParams) (*domain.RecommendationResult, error) {
	q := url.Values{}
	setString(q, "item_id", p.ItemID)
	setString(q, "q", p.Query)
	setString(q, "country", p.Country)
	setInt(q, "limit", p.Limit)

	var resp domain.RecommendationResult
	if err := c.get(ctx, "/api/v1/recommendations", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PriceHistory returns completed sales for the keywords.
func (c *Client) PriceHistory(
	ctx context.Context,
	query, country string,
	limit int,
) (*domain.PriceHistory, error) {
	q := url.Values{}
	q.Set("q", query)
	setString(q, "country", country)
	setInt(q, "limit", limit)

	var resp domain.PriceHistory
	if err := c.get(ctx, "/api/v1/price-history", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChartData returns the multi-variant sold price chart for the keywords.
func (c *Client) ChartData(ctx context.Context, query, country string) (*domain.ChartData, error) {
	q := url.Values{}
	q.Set("q", query)
	setString(q, "country", country)

	var resp domain.ChartData
	if err := c.get(ctx, "/api/v1/chart-data", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quota returns the server's upstream call budget.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var resp Quota
	if err := c.get(ctx, "/api/v1/quota", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
