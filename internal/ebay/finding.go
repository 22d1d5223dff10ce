package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/clareta27/vinyl-backend/internal/cache"
)

const (
	findingPageSize       = 100
	findingServiceVersion = "1.13.0"
	findCompletedItems    = "findCompletedItems"
)

// CompletedItems implements EbayClient.CompletedItems by querying the
// Finding API for sold listings. Pages are requested until req.Limit items
// have been collected or the results run out. The page size stays fixed
// across requests since the upstream offsets pages by pageNumber*entriesPerPage.
func (c *Client) CompletedItems(ctx context.Context, req CompletedRequest) ([]CompletedItem, error) {
	mp := ResolveMarketplace(req.Country)
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	key := cache.BuildKey("completed", mp.ID, req.Keywords, strconv.Itoa(limit))

	return cached(c, "completed", key, func() ([]CompletedItem, error) {
		items := make([]CompletedItem, 0, limit)
		perPage := min(limit, findingPageSize)

		for page := 1; len(items) < limit; page++ {
			env, err := c.findingPage(ctx, mp, req.Keywords, perPage, page)
			if err != nil {
				return nil, err
			}

			got := 0
			for _, rp := range env.SearchResult {
				for i := range rp.Item {
					items = append(items, toCompletedItem(&rp.Item[i]))
					got++
				}
			}

			if got == 0 || page >= totalPages(env) {
				break
			}
		}

		if len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	})
}

func (c *Client) findingPage(
	ctx context.Context,
	mp Marketplace,
	keywords string,
	perPage, page int,
) (*findingEnvelope, error) {
	params := url.Values{}
	params.Set("OPERATION-NAME", findCompletedItems)
	params.Set("SERVICE-VERSION", findingServiceVersion)
	params.Set("RESPONSE-DATA-FORMAT", "JSON")
	params.Set("REST-PAYLOAD", "")
	params.Set("keywords", keywords)
	params.Set("paginationInput.entriesPerPage", strconv.Itoa(perPage))
	params.Set("paginationInput.pageNumber", strconv.Itoa(page))
	params.Set("sortOrder", "EndTimeSoonest")
	params.Set("itemFilter(0).name", "SoldItemsOnly")
	params.Set("itemFilter(0).value", "true")
	if c.appID != "" {
		params.Set("SECURITY-APPNAME", c.appID)
	}

	h := http.Header{}
	h.Set("X-EBAY-SOA-OPERATION-NAME", findCompletedItems)
	h.Set("X-EBAY-SOA-GLOBAL-ID", mp.GlobalID)
	h.Set("X-EBAY-C-MARKETPLACE-ID", mp.ID)

	body, err := c.get(ctx, "completed", c.findingURL+"?"+params.Encode(), h)
	if err != nil {
		return nil, err
	}

	var resp findingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing completed items response: %w", err)
	}
	if len(resp.FindCompletedItemsResponse) == 0 {
		return &findingEnvelope{}, nil
	}

	env := &resp.FindCompletedItemsResponse[0]
	if ack := first(env.Ack); ack != "" && ack != "Success" && ack != "Warning" {
		return nil, &UpstreamError{
			Endpoint:   "completed",
			StatusCode: http.StatusOK,
			Body:       findingErrorMessage(env, body),
		}
	}
	return env, nil
}

func totalPages(env *findingEnvelope) int {
	if len(env.PaginationOutput) == 0 {
		return 0
	}
	n, err := strconv.Atoi(first(env.PaginationOutput[0].TotalPages))
	if err != nil {
		return 0
	}
	return n
}

func findingErrorMessage(env *findingEnvelope, raw []byte) string {
	var msgs []string
	for _, el := range env.ErrorMessage {
		for _, e := range el.Error {
			if m := first(e.Message); m != "" {
				msgs = append(msgs, m)
			}
		}
	}
	if len(msgs) == 0 {
		return string(raw)
	}
	return strings.Join(msgs, "; ")
}

func toCompletedItem(fi *findingItem) CompletedItem {
	ci := CompletedItem{
		ItemID:      first(fi.ItemID),
		Title:       first(fi.Title),
		ViewItemURL: first(fi.ViewItemURL),
		GalleryURL:  first(fi.GalleryURL),
	}

	if len(fi.Condition) > 0 {
		ci.Condition = first(fi.Condition[0].ConditionDisplayName)
	}

	if len(fi.SellingStatus) > 0 {
		ss := fi.SellingStatus[0]
		ci.SellingState = first(ss.SellingState)
		amount := ss.CurrentPrice
		if len(amount) == 0 {
			amount = ss.ConvertedCurrentPrice
		}
		if len(amount) > 0 {
			ci.Price = amount[0].Value
			ci.Currency = amount[0].CurrencyID
		}
	}

	if len(fi.ListingInfo) > 0 {
		ci.EndTime = first(fi.ListingInfo[0].EndTime)
	}

	return ci
}

// first unwraps the single-element arrays the Finding API uses for scalars.
func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
