package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/config"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httpclient"
)

// Config holds all configuration for the storefront API.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"PORT" envDefault:"3000"`

	// Celler Hut upstream API
	UpstreamURL        string `env:"CELLER_HUT_API_URL" envDefault:"http://localhost:8000"`
	UpstreamTimeoutMS  int    `env:"CELLER_HUT_API_TIMEOUT" envDefault:"10000"`
	UpstreamToken      string `env:"CELLER_HUT_API_TOKEN" envDefault:""`
	UpstreamMaxRetries int    `env:"CELLER_HUT_API_MAX_RETRIES" envDefault:"0"`

	// Circuit breaker around upstream calls
	BreakerMaxRequests  uint32  `env:"CELLER_HUT_BREAKER_MAX_REQUESTS" envDefault:"1"`
	BreakerMinRequests  uint32  `env:"CELLER_HUT_BREAKER_MIN_REQUESTS" envDefault:"5"`
	BreakerIntervalSec  int     `env:"CELLER_HUT_BREAKER_INTERVAL_SECONDS" envDefault:"60"`
	BreakerTimeoutSec   int     `env:"CELLER_HUT_BREAKER_TIMEOUT_SECONDS" envDefault:"30"`
	BreakerFailureRatio float64 `env:"CELLER_HUT_BREAKER_FAILURE_RATIO" envDefault:"0.5"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	CORSMaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`

	// Cache-Control max-age of anonymous catalog reads, in seconds
	CatalogMaxAge int `env:"CATALOG_CACHE_MAX_AGE" envDefault:"60"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"200"`

	// Redis snapshot cache. An empty address disables it.
	RedisAddr       string `env:"REDIS_ADDR" envDefault:""`
	RedisPass       string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLMinutes int    `env:"SNAPSHOT_TTL_MINUTES" envDefault:"60"`

	// Tracing
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpstreamTimeout is the per-call upstream timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutMS) * time.Millisecond
}

// Breaker returns the circuit breaker settings for upstream calls.
func (c *Config) Breaker() httpclient.CircuitBreakerConfig {
	cb := httpclient.DefaultCircuitBreakerConfig("celler-hut")
	cb.MaxRequests = c.BreakerMaxRequests
	cb.MinRequests = c.BreakerMinRequests
	cb.Interval = time.Duration(c.BreakerIntervalSec) * time.Second
	cb.Timeout = time.Duration(c.BreakerTimeoutSec) * time.Second
	cb.FailureRatio = c.BreakerFailureRatio
	return cb
}

// CacheTTL is how long list snapshots are kept.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	u, err := url.Parse(c.UpstreamURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid CELLER_HUT_API_URL: %q", c.UpstreamURL)
	}
	if c.UpstreamTimeoutMS <= 0 {
		return fmt.Errorf("CELLER_HUT_API_TIMEOUT must be positive, got %d", c.UpstreamTimeoutMS)
	}
	if c.UpstreamMaxRetries < 0 {
		return fmt.Errorf("CELLER_HUT_API_MAX_RETRIES must not be negative, got %d", c.UpstreamMaxRetries)
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		return fmt.Errorf("CELLER_HUT_BREAKER_FAILURE_RATIO must be in (0, 1], got %g", c.BreakerFailureRatio)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %g", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %g", c.OTELSampleRate)
	}
	if c.CacheTTLMinutes <= 0 {
		return fmt.Errorf("SNAPSHOT_TTL_MINUTES must be positive, got %d", c.CacheTTLMinutes)
	}
	return nil
}
