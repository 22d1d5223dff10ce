// Package engine implements the discovery operations on top of the eBay
// client: trending, search, code lookup, recommendations, price history
// and chart data. Multi-query operations fan out concurrently and isolate
// per-query failures.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/pkg/pricestats"
	score "github.com/clareta27/vinyl-backend/pkg/scorer"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// ErrInvalidInput is returned before any upstream call when a required
// keyword, code or recommendation base is missing or malformed.
var ErrInvalidInput = errors.New("invalid input")

const (
	tracerName = "github.com/clareta27/vinyl-backend/internal/engine"

	defaultFanoutLimit     = 4
	defaultCountry         = "US"
	defaultTrendingLimit   = 20
	defaultPerQueryLimit   = 50
	defaultSearchLimit     = 20
	maxSearchLimit         = 200
	defaultLookupLimit     = 20
	defaultRecommendLimit  = 12
	defaultHistoryLimit    = 50
	maxHistoryLimit        = 200
	defaultChartRecordsCap = 120
)

// DefaultTrendingQueries seed the trending listing.
var DefaultTrendingQueries = []string{
	"vinyl record",
	"vinyl lp new",
	"limited edition vinyl",
	"first press lp",
	"cassette album",
}

// Discovery is the set of operations exposed over HTTP.
type Discovery interface {
	Trending(ctx context.Context, country string, limit int) (*domain.TrendingResult, error)
	Search(ctx context.Context, p SearchParams) (*domain.SearchResult, error)
	Lookup(ctx context.Context, code, country string) (*domain.LookupResult, error)
	Recommend(ctx context.Context, p RecommendParams) (*domain.RecommendationResult, error)
	PriceHistory(ctx context.Context, query, country string, limit int) (*domain.PriceHistory, error)
	ChartData(ctx context.Context, query, country string) (*domain.ChartData, error)
}

// Engine implements Discovery.
type Engine struct {
	ebay   ebay.EbayClient
	log    *slog.Logger
	jitter score.Jitter
	tracer trace.Tracer

	nowFunc         func() time.Time
	fanoutLimit     int
	defaultCountry  string
	trendingQueries []string
	perQueryLimit   int
	windows         []int
	variantLimit    int
}

var _ Discovery = (*Engine)(nil)

// NewEngine creates a new Engine backed by the given eBay client.
func NewEngine(e ebay.EbayClient, opts ...EngineOption) *Engine {
	eng := &Engine{
		ebay:            e,
		log:             slog.Default(),
		jitter:          score.DefaultJitter,
		tracer:          otel.GetTracerProvider().Tracer(tracerName),
		nowFunc:         time.Now,
		fanoutLimit:     defaultFanoutLimit,
		defaultCountry:  defaultCountry,
		trendingQueries: DefaultTrendingQueries,
		perQueryLimit:   defaultPerQueryLimit,
		windows:         pricestats.DefaultWindows,
		variantLimit:    defaultChartRecordsCap,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithJitter sets the randomness source used by scoring.
func WithJitter(j score.Jitter) EngineOption {
	return func(e *Engine) {
		e.jitter = j
	}
}

// WithNowFunc overrides the clock used for chart windows.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// WithFanoutLimit caps how many upstream queries one request runs at once.
func WithFanoutLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.fanoutLimit = n
		}
	}
}

// WithDefaultCountry sets the country used when a request omits one.
func WithDefaultCountry(c string) EngineOption {
	return func(e *Engine) {
		if c != "" {
			e.defaultCountry = strings.ToUpper(c)
		}
	}
}

// WithTrendingQueries replaces the keywords aggregated for trending.
func WithTrendingQueries(q []string) EngineOption {
	return func(e *Engine) {
		if len(q) > 0 {
			e.trendingQueries = q
		}
	}
}

// WithPerQueryLimit sets how many listings each fan-out query requests.
func WithPerQueryLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.perQueryLimit = n
		}
	}
}

// WithWindows sets the trailing day windows summarized by ChartData.
func WithWindows(days []int) EngineOption {
	return func(e *Engine) {
		if len(days) > 0 {
			e.windows = days
		}
	}
}

// WithVariantLimit sets how many completed sales ChartData fetches per
// query variant.
func WithVariantLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.variantLimit = n
		}
	}
}

// WithTracerProvider sets the provider engine spans are created from.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		e.tracer = tp.Tracer(tracerName)
	}
}

func (eng *Engine) country(c string) string {
	if c = strings.TrimSpace(c); c != "" {
		return strings.ToUpper(c)
	}
	return eng.defaultCountry
}

func (eng *Engine) startSpan(
	ctx context.Context,
	op string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	return eng.tracer.Start(ctx, "engine."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
