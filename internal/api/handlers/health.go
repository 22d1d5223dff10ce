package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/metrics"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	tokens ebay.TokenProvider
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(tokens ebay.TokenProvider) *HealthHandler {
	return &HealthHandler{tokens: tokens}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	metrics.HealthzUp.Set(1)
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if a marketplace access token can be obtained, 503
// otherwise. A cached token satisfies the check without a network call.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if _, err := h.tokens.Token(c.Request().Context()); err != nil {
		metrics.ReadyzUp.Set(0)
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	metrics.ReadyzUp.Set(1)
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}

// RegisterHealthRoutes registers the liveness and readiness probes.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
