package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/clareta27/vinyl-backend/internal/api/handlers"
	"github.com/clareta27/vinyl-backend/internal/api/middleware"
	"github.com/clareta27/vinyl-backend/internal/config"
	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/engine"
	"github.com/clareta27/vinyl-backend/internal/tracing"
	"github.com/clareta27/vinyl-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	tp, shutdownTracing, err := tracing.Setup(cmd.Context(), cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}

	e := buildServer(cfg, log, tp)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server",
		"addr", addr,
		"version", Version,
		"country", cfg.Ebay.DefaultCountry,
		"tracing", cfg.Tracing.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-quit:
	case serveErr = <-errCh:
		log.Error("server error", "error", serveErr)
	}

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Warn("flushing traces", "error", err)
	}

	log.Info("server stopped")
	return serveErr
}

// buildServer wires the eBay client, discovery engine, middleware and
// routes into an Echo instance ready to start.
func buildServer(cfg *config.Config, log *slog.Logger, tp trace.TracerProvider) *echo.Echo {
	tokens := ebay.NewRefreshTokenProvider(
		cfg.Ebay.ClientID,
		cfg.Ebay.ClientSecret,
		cfg.Ebay.RefreshToken,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
		ebay.WithScopes(cfg.Ebay.Scopes),
		ebay.WithAuthHTTPClient(tracing.HTTPClient(tp, 10*time.Second)),
	)

	rl := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	client := ebay.NewClient(tokens,
		ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
		ebay.WithFindingURL(cfg.Ebay.FindingURL),
		ebay.WithAppID(cfg.Ebay.AppID),
		ebay.WithHTTPClient(tracing.HTTPClient(tp, 30*time.Second)),
		ebay.WithRateLimiter(rl),
		ebay.WithCacheTTL(cfg.Ebay.CacheTTL),
	)

	engineOpts := []engine.EngineOption{
		engine.WithLogger(log),
		engine.WithFanoutLimit(cfg.Engine.FanoutConcurrency),
		engine.WithDefaultCountry(cfg.Ebay.DefaultCountry),
		engine.WithWindows(cfg.Engine.ChartWindowDays),
		engine.WithVariantLimit(cfg.Engine.ChartVariantLimit),
		engine.WithTracerProvider(tp),
	}
	if len(cfg.Engine.TrendingQueries) > 0 {
		engineOpts = append(engineOpts, engine.WithTrendingQueries(cfg.Engine.TrendingQueries))
	}
	eng := engine.NewEngine(client, engineOpts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Tracing(tp))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(tokens))

	api := humaecho.New(e, huma.DefaultConfig("Vinyl Backend API", Version))

	discovery := handlers.NewDiscoveryHandler(eng,
		handlers.WithLogger(log),
		handlers.WithTrendingLimit(cfg.Engine.TrendingLimit),
	)
	handlers.RegisterDiscoveryRoutes(api, e, discovery)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	return e
}
