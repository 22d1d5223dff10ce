// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Ebay    EbayConfig    `yaml:"ebay"`
	Engine  EngineConfig  `yaml:"engine"`
	Tracing TracingConfig `yaml:"tracing"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EbayConfig defines eBay API credentials and endpoints.
type EbayConfig struct {
	ClientID       string          `yaml:"client_id"`
	ClientSecret   string          `yaml:"client_secret"`
	RefreshToken   string          `yaml:"refresh_token"`
	Scopes         string          `yaml:"scopes"`
	TokenURL       string          `yaml:"token_url"`
	BrowseURL      string          `yaml:"browse_url"`
	FindingURL     string          `yaml:"finding_url"`
	AppID          string          `yaml:"app_id"` // defaults to client_id
	DefaultCountry string          `yaml:"default_country"`
	CacheTTL       time.Duration   `yaml:"cache_ttl"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// EngineConfig tunes the discovery operations.
type EngineConfig struct {
	FanoutConcurrency int      `yaml:"fanout_concurrency"`
	TrendingQueries   []string `yaml:"trending_queries"`
	TrendingLimit     int      `yaml:"trending_limit"`
	ChartWindowDays   []int    `yaml:"chart_window_days"`
	ChartVariantLimit int      `yaml:"chart_variant_limit"`
}

// TracingConfig defines the OpenTelemetry exporter settings.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"service_name"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file next to the config, if present,
// is loaded first; variables already set in the environment win.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyEbayDefaults(&cfg.Ebay)
	applyEngineDefaults(&cfg.Engine)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.Scopes == "" {
		e.Scopes = "https://api.ebay.com/oauth/api_scope"
	}
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1"
	}
	if e.FindingURL == "" {
		e.FindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"
	}
	if e.AppID == "" {
		e.AppID = e.ClientID
	}
	if e.DefaultCountry == "" {
		e.DefaultCountry = "US"
	}
	if e.CacheTTL == 0 {
		e.CacheTTL = 5 * time.Minute
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyEngineDefaults(e *EngineConfig) {
	if e.FanoutConcurrency == 0 {
		e.FanoutConcurrency = 4
	}
	if e.TrendingLimit == 0 {
		e.TrendingLimit = 20
	}
	if len(e.ChartWindowDays) == 0 {
		e.ChartWindowDays = []int{30, 60, 90}
	}
	if e.ChartVariantLimit == 0 {
		e.ChartVariantLimit = 120
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "vinyl-backend"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Ebay.ClientID == "" {
		errs = append(errs, fmt.Errorf("ebay.client_id is required"))
	}
	if cfg.Ebay.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("ebay.client_secret is required"))
	}
	if cfg.Ebay.RefreshToken == "" {
		errs = append(errs, fmt.Errorf("ebay.refresh_token is required"))
	}
	if cfg.Ebay.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("ebay.rate_limit.per_second must not be negative"))
	}

	if cfg.Engine.FanoutConcurrency < 1 {
		errs = append(errs, fmt.Errorf("engine.fanout_concurrency must be at least 1"))
	}
	for _, d := range cfg.Engine.ChartWindowDays {
		if d < 1 {
			errs = append(
				errs,
				fmt.Errorf("engine.chart_window_days entries must be positive (got %d)", d),
			)
		}
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(
			errs,
			fmt.Errorf("tracing.sample_ratio must be between 0 and 1 (got %g)", cfg.Tracing.SampleRatio),
		)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}
