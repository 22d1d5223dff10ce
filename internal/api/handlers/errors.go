package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/engine"
)

// statusFor maps an engine or upstream error to an HTTP status and the
// message returned to the caller.
func statusFor(err error) (int, string) {
	var upstream *ebay.UpstreamError
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ebay.ErrDailyLimitReached):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, ebay.ErrAuthFailure):
		return http.StatusBadGateway, "eBay authentication failed: " + err.Error()
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "eBay API error: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream request timed out"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func toHTTPError(log *slog.Logger, op string, err error) error {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("operation failed", "operation", op, "status", status, "err", err)
	}
	return huma.NewError(status, msg)
}
