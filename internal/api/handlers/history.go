package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// PriceHistoryInput holds the price history parameters.
type PriceHistoryInput struct {
	Query   string `query:"q"       required:"true" minLength:"1" doc:"Keywords of the release"                 example:"radiohead ok computer"`
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)" example:"US"`
	Limit   int    `query:"limit"   minimum:"1"     maximum:"200" doc:"Maximum sold listings (default 50)" example:"50"`
}

// PriceHistoryOutput is the response body for the price history endpoint.
type PriceHistoryOutput struct {
	Body *domain.PriceHistory
}

// PriceHistory returns recent completed sales with summary statistics.
func (h *DiscoveryHandler) PriceHistory(
	ctx context.Context,
	in *PriceHistoryInput,
) (*PriceHistoryOutput, error) {
	res, err := h.svc.PriceHistory(ctx, in.Query, in.Country, in.Limit)
	if err != nil {
		return nil, toHTTPError(h.log, "price-history", err)
	}
	return &PriceHistoryOutput{Body: res}, nil
}

// ChartDataInput holds the chart data parameters.
type ChartDataInput struct {
	Query   string `query:"q"       required:"true" minLength:"1" doc:"Keywords of the release" example:"pink floyd"`
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)" example:"US"`
}

// ChartDataOutput is the response body for the chart data endpoint.
type ChartDataOutput struct {
	Body *domain.ChartData
}

// ChartData returns sold prices across format variants with trailing
// window summaries.
func (h *DiscoveryHandler) ChartData(ctx context.Context, in *ChartDataInput) (*ChartDataOutput, error) {
	res, err := h.svc.ChartData(ctx, in.Query, in.Country)
	if err != nil {
		return nil, toHTTPError(h.log, "chart-data", err)
	}
	return &ChartDataOutput{Body: res}, nil
}

// RegisterHistoryRoutes registers the price history and chart endpoints.
func RegisterHistoryRoutes(api huma.API, h *DiscoveryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/price-history",
		Summary:     "Get sold price history",
		Description: "Returns completed sales for the keywords, newest first, with count, average, median, lowest and highest price.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.PriceHistory)

	huma.Register(api, huma.Operation{
		OperationID: "get-chart-data",
		Method:      http.MethodGet,
		Path:        "/api/v1/chart-data",
		Summary:     "Get sold price chart data",
		Description: "Merges completed sales across format variants of the keywords and summarizes trailing windows.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.ChartData)
}
