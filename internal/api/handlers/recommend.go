package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clareta27/vinyl-backend/internal/engine"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// RecommendInput holds the recommendation parameters. At least one of
// item_id and q must be set.
type RecommendInput struct {
	ItemID  string `query:"item_id" doc:"Base listing id"                                      example:"v1|125551234567|0"`
	Query   string `query:"q"       doc:"Free-text base, used instead of or with item_id"      example:"pink floyd"`
	Country string `query:"country" doc:"ISO country code of the marketplace (default US)"     example:"US"`
	Limit   int    `query:"limit"   doc:"Maximum recommendations (default 12)" minimum:"1" maximum:"100" example:"12"`
}

// RecommendOutput is the response body for the recommendations endpoint.
type RecommendOutput struct {
	Body *domain.RecommendationResult
}

// Recommend returns listings similar to the base item or query.
func (h *DiscoveryHandler) Recommend(ctx context.Context, in *RecommendInput) (*RecommendOutput, error) {
	res, err := h.svc.Recommend(ctx, engine.RecommendParams{
		ItemID:  in.ItemID,
		Query:   in.Query,
		Country: in.Country,
		Limit:   in.Limit,
	})
	if err != nil {
		return nil, toHTTPError(h.log, "recommend", err)
	}
	return &RecommendOutput{Body: res}, nil
}

// RegisterRecommendRoutes registers the recommendations endpoint.
func RegisterRecommendRoutes(api huma.API, h *DiscoveryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "Recommend similar records",
		Description: "Ranks listings by artist match, price proximity and shared title words relative to the base.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.Recommend)
}
