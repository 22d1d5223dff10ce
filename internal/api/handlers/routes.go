package handlers

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

// RegisterDiscoveryRoutes registers every discovery and price operation.
func RegisterDiscoveryRoutes(api huma.API, e *echo.Echo, h *DiscoveryHandler) {
	RegisterTrendingRoutes(api, e, h)
	RegisterSearchRoutes(api, h)
	RegisterRecommendRoutes(api, h)
	RegisterHistoryRoutes(api, h)
}
