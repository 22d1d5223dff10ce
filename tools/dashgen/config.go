package main

import "errors"

// KnownMetrics is the set of metric names exported by vinyl-backend plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"vinyl_http_request_duration_seconds_bucket": true,
	"vinyl_http_requests_total":                  true,

	// Health metrics.
	"vinyl_healthz_up": true,
	"vinyl_readyz_up":  true,

	// eBay API metrics.
	"vinyl_upstream_calls_total":             true,
	"vinyl_upstream_duration_seconds_bucket": true,
	"vinyl_upstream_daily_usage":             true,
	"vinyl_upstream_daily_limit_hits_total":  true,
	"vinyl_token_refreshes_total":            true,
	"vinyl_token_refresh_failures_total":     true,
	"vinyl_cache_lookups_total":              true,
	"vinyl_fanout_query_failures_total":      true,
	"vinyl_sold_records_per_request_bucket":  true,

	// Recording rules.
	"vinyl:http_requests:rate5m":   true,
	"vinyl:http_errors:rate5m":     true,
	"vinyl:upstream_calls:rate5m":  true,
	"vinyl:upstream_errors:rate5m": true,
	"vinyl:cache_hit_ratio:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
