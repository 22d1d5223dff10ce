package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/clareta27/vinyl-backend/internal/cache"
	"github.com/clareta27/vinyl-backend/internal/metrics"
)

const (
	defaultBrowseURL  = "https://api.ebay.com/buy/browse/v1"
	defaultFindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"
	defaultCacheTTL   = 5 * time.Minute
	defaultLimit      = 50
)

// Client implements EbayClient against the Browse and Finding APIs.
// Successful responses are cached under a key built from the operation,
// marketplace, query and parameters; a cache hit makes no upstream call and
// does not touch the token. Cached values are shared and must be treated
// as read-only.
type Client struct {
	tokens      TokenProvider
	browseURL   string
	findingURL  string
	appID       string
	client      *http.Client
	rateLimiter *RateLimiter
	cache       *cache.Cache[any]
	cacheTTL    time.Duration
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBrowseURL overrides the Browse API base URL.
func WithBrowseURL(u string) ClientOption {
	return func(c *Client) {
		c.browseURL = u
	}
}

// WithFindingURL overrides the Finding API endpoint.
func WithFindingURL(u string) ClientOption {
	return func(c *Client) {
		c.findingURL = u
	}
}

// WithAppID sets the application id sent to the Finding API.
func WithAppID(id string) ClientOption {
	return func(c *Client) {
		c.appID = id
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every upstream request goes through Wait()
// first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithCache sets the shared result cache. A nil cache disables caching.
func WithCache(rc *cache.Cache[any]) ClientOption {
	return func(c *Client) {
		c.cache = rc
	}
}

// WithCacheTTL overrides how long successful responses are cached.
func WithCacheTTL(d time.Duration) ClientOption {
	return func(c *Client) {
		c.cacheTTL = d
	}
}

// NewClient creates a new eBay API client. Without WithCache the client
// gets its own private cache.
func NewClient(tokens TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		tokens:     tokens,
		browseURL:  defaultBrowseURL,
		findingURL: defaultFindingURL,
		client:     &http.Client{Timeout: 30 * time.Second},
		cache:      cache.New[any](),
		cacheTTL:   defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search implements EbayClient.Search by querying the Browse API.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	mp := ResolveMarketplace(req.Country)
	params := searchParams(req)
	key := cache.BuildKey("search", mp.ID, req.Query, params.Encode())

	return cached(c, "search", key, func() (*SearchResponse, error) {
		if req.Query != "" {
			params.Set("q", req.Query)
		}
		u := c.browseURL + "/item_summary/search?" + params.Encode()

		body, err := c.get(ctx, "search", u, browseHeaders(mp))
		if err != nil {
			return nil, err
		}

		var apiResp browseAPIResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			return nil, fmt.Errorf("parsing search response: %w", err)
		}

		return &SearchResponse{
			Marketplace: mp.ID,
			Items:       apiResp.ItemSummaries,
			Total:       apiResp.Total,
			Offset:      apiResp.Offset,
			Limit:       apiResp.Limit,
			HasMore:     apiResp.Next != "",
		}, nil
	})
}

// GetItem implements EbayClient.GetItem by fetching one item's detail.
func (c *Client) GetItem(ctx context.Context, itemID, country string) (*ItemSummary, error) {
	mp := ResolveMarketplace(country)
	key := cache.BuildKey("item", mp.ID, itemID)

	return cached(c, "item", key, func() (*ItemSummary, error) {
		u := c.browseURL + "/item/" + url.PathEscape(itemID)

		body, err := c.get(ctx, "item", u, browseHeaders(mp))
		if err != nil {
			return nil, err
		}

		var item ItemSummary
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("parsing item response: %w", err)
		}
		return &item, nil
	})
}

// searchParams builds every Browse parameter except q, in a stable order.
func searchParams(req SearchRequest) url.Values {
	params := url.Values{}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}

	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}

	keys := make([]string, 0, len(req.Extra))
	for k := range req.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		params.Set(k, req.Extra[k])
	}

	return params
}

func browseHeaders(mp Marketplace) http.Header {
	h := http.Header{}
	h.Set("X-EBAY-C-MARKETPLACE-ID", mp.ID)
	h.Set("Content-Type", "application/json")
	return h
}

// get performs an authorized GET and returns the decoded body of a 200
// response. Any other status becomes an *UpstreamError.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, header http.Header) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	for k, v := range header {
		httpReq.Header[k] = v
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept-Encoding", acceptEncoding)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamCallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

// cached returns the value stored under key, or calls fetch and stores its
// result. Failures are never cached.
func cached[T any](c *Client, kind, key string, fetch func() (T, error)) (T, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			if typed, ok := v.(T); ok {
				metrics.CacheLookupsTotal.WithLabelValues(kind, "hit").Inc()
				return typed, nil
			}
		}
		metrics.CacheLookupsTotal.WithLabelValues(kind, "miss").Inc()
	}

	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	if c.cache != nil {
		c.cache.Set(key, v, c.cacheTTL)
	}
	return v, nil
}
