package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	mw "github.com/clareta27/vinyl-backend/internal/api/middleware"
)

func TestTracingMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		route      string
		target     string
		status     int
		wantSpans  int
		wantName   string
		wantStatus string
	}{
		{
			name:       "names span after route",
			route:      "/api/v1/lookup/:code",
			target:     "/api/v1/lookup/123",
			status:     http.StatusOK,
			wantSpans:  1,
			wantName:   "GET /api/v1/lookup/:code",
			wantStatus: "Unset",
		},
		{
			name:       "server error marks span",
			route:      "/api/v1/search",
			target:     "/api/v1/search?q=x",
			status:     http.StatusInternalServerError,
			wantSpans:  1,
			wantName:   "GET /api/v1/search",
			wantStatus: "Error",
		},
		{
			name:      "probes are not traced",
			route:     "/readyz",
			target:    "/readyz",
			status:    http.StatusOK,
			wantSpans: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

			var handlerSpan trace.SpanContext
			e := echo.New()
			e.Use(mw.Tracing(tp))
			e.GET(tt.route, func(c echo.Context) error {
				handlerSpan = trace.SpanContextFromContext(c.Request().Context())
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			e.ServeHTTP(httptest.NewRecorder(), req)

			spans := rec.Ended()
			require.Len(t, spans, tt.wantSpans)
			if tt.wantSpans == 0 {
				return
			}
			assert.Equal(t, tt.wantName, spans[0].Name())
			assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code.String())
			assert.Equal(t, spans[0].SpanContext().SpanID(), handlerSpan.SpanID())
		})
	}
}

func TestTracingMiddleware_ContinuesIncomingTrace(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	e := echo.New()
	e.Use(mw.Tracing(tp))
	e.GET("/api/v1/trending", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trending", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	e.ServeHTTP(httptest.NewRecorder(), req)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}
