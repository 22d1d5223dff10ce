// Package middleware provides Echo middleware for vinyl-backend.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clareta27/vinyl-backend/internal/metrics"
)

// unmatchedPath labels requests that matched no route, so scanners probing
// random URLs cannot inflate label cardinality.
const unmatchedPath = "unmatched"

// metricsSkipPaths are operational endpoints excluded from HTTP request
// metrics. The probes keep their own up/down gauges.
var metricsSkipPaths = map[string]struct{}{
	"/metrics":      {},
	"/healthz":      {},
	"/readyz":       {},
	"/docs":         {},
	"/openapi.json": {},
	"/openapi.yaml": {},
}

// Metrics returns Echo middleware that records request duration and status
// labelled by route template, e.g. /api/v1/lookup/:code.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)
			if _, skip := metricsSkipPaths[path]; skip {
				return next(c)
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the error response so the status is final.
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return nil
		}
	}
}

func routePath(c echo.Context) string {
	path := c.Path()
	if path == "" || path == "/*" {
		if _, ok := metricsSkipPaths[c.Request().URL.Path]; ok {
			return c.Request().URL.Path
		}
		return unmatchedPath
	}
	return path
}
