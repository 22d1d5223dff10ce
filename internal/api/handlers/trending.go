package handlers

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

const feedPath = "/api/v1/trending/feed.rss"

// TrendingInput holds the trending query parameters.
type TrendingInput struct {
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)" example:"GB"`
	Limit   int    `query:"limit"   doc:"Maximum items to return (default 20)"            example:"20" minimum:"1" maximum:"100"`
}

// TrendingOutput is the response body for the trending endpoint.
type TrendingOutput struct {
	Body *domain.TrendingResult
}

// Trending returns popular listings ranked by popularity score.
func (h *DiscoveryHandler) Trending(ctx context.Context, in *TrendingInput) (*TrendingOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = h.trendingLimit
	}

	res, err := h.svc.Trending(ctx, in.Country, limit)
	if err != nil {
		return nil, toHTTPError(h.log, "trending", err)
	}
	return &TrendingOutput{Body: res}, nil
}

// TrendingFeed renders the trending listing as an RSS 2.0 feed.
func (h *DiscoveryHandler) TrendingFeed(c echo.Context) error {
	res, err := h.svc.Trending(c.Request().Context(), c.QueryParam("country"), h.trendingLimit)
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("operation failed", "operation", "trending-feed", "status", status, "err", err)
		}
		return c.JSON(status, ErrorResponse{Error: msg})
	}

	rss, err := trendingFeed(res, h.nowFunc()).ToRss()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "rendering feed failed"})
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

func trendingFeed(res *domain.TrendingResult, now time.Time) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "Trending vinyl on " + res.Marketplace,
		Link:        &feeds.Link{Href: "https://www.ebay.com/b/Vinyl-Records/176985"},
		Description: fmt.Sprintf("The %d most popular record listings right now.", res.Count),
		Created:     now,
	}

	feed.Items = make([]*feeds.Item, 0, len(res.Items))
	for i := range res.Items {
		it := &res.Items[i]
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          it.ItemID,
			Title:       it.Title,
			Link:        &feeds.Link{Href: it.URL},
			Author:      feedAuthor(it.Artist),
			Description: feedDescription(&it.Item),
			Created:     now,
		})
	}
	return feed
}

func feedAuthor(artist *string) *feeds.Author {
	if artist == nil {
		return nil
	}
	return &feeds.Author{Name: *artist}
}

func feedDescription(it *domain.Item) string {
	var parts []string
	if it.Price != nil {
		parts = append(parts, fmt.Sprintf("Price: %.2f", *it.Price))
	}
	if it.Condition != nil {
		parts = append(parts, "Condition: "+html.EscapeString(*it.Condition))
	}
	if it.Image != nil {
		parts = append(parts, fmt.Sprintf(`<img src="%s" alt="">`, html.EscapeString(*it.Image)))
	}
	return strings.Join(parts, "<br>")
}

// RegisterTrendingRoutes registers the trending operation and its RSS feed.
func RegisterTrendingRoutes(api huma.API, e *echo.Echo, h *DiscoveryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-trending",
		Method:      http.MethodGet,
		Path:        "/api/v1/trending",
		Summary:     "List trending records",
		Description: "Fans out the seed queries, removes non-record listings and duplicates, and ranks the rest by popularity.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.Trending)

	if e != nil {
		e.GET(feedPath, h.TrendingFeed)
	}
}
