package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// probePaths are polled by orchestrators. Their successes are logged only
// when the probe recovers, failures always.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestID returns the request ID stored by RequestLog, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header, the echo context and the request context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		probeOK = map[string]bool{}
	)

	// shouldLogProbe reports whether a probe result is worth a log line and
	// records it as the latest state.
	shouldLogProbe := func(path string, ok bool) bool {
		mu.Lock()
		defer mu.Unlock()
		prev := probeOK[path]
		probeOK[path] = ok
		return !ok || !prev
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDKey{}, reqID)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			path := req.URL.Path

			level := slog.LevelInfo
			if _, probe := probePaths[path]; probe {
				ok := status < http.StatusBadRequest
				if !shouldLogProbe(path, ok) {
					return nil
				}
				if !ok {
					level = slog.LevelWarn
				}
			} else {
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				}
			}

			attrs := []any{
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}

			log.Log(c.Request().Context(), level, "request", attrs...)

			return nil
		}
	}
}
