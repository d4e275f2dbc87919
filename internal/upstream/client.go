// Package upstream is the single HTTP client used to talk to the Celler Hut
// e-commerce API. It forwards bearer tokens, unwraps the success envelope and
// maps failures onto Error, ErrTimeout and ErrNetworkUnreachable.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httpclient"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/middleware"
)

const (
	maxResponseBody = 10 << 20
	healthTimeout   = 5 * time.Second
	breakerName     = "cellerhut-api"
)

// Config holds the upstream client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Breaker    httpclient.CircuitBreakerConfig
}

// Client performs calls against the Celler Hut API.
type Client struct {
	baseURL string
	http    *httpclient.CircuitBreakerClient
	probe   *httpclient.Client
	tokens  *TokenStore
	logger  *slog.Logger
}

// NewClient creates a client for cfg.BaseURL. tokens supplies the default
// bearer token for calls whose context carries none and may be nil.
func NewClient(cfg Config, tokens *TokenStore, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must be absolute", cfg.BaseURL)
	}

	httpCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}
	httpCfg.MaxRetries = cfg.MaxRetries

	cbCfg := cfg.Breaker
	if cbCfg.Name == "" {
		cbCfg = httpclient.DefaultCircuitBreakerConfig(breakerName)
	}

	probeCfg := httpclient.DefaultConfig()
	probeCfg.Timeout = healthTimeout

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    httpclient.NewCircuitBreakerClient(httpclient.New(httpCfg), cbCfg, logger),
		probe:   httpclient.New(probeCfg),
		tokens:  tokens,
		logger:  logger,
	}, nil
}

// Get performs a GET and decodes the unwrapped payload into dst.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dst any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, dst)
}

// Post performs a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, dst any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, dst)
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, dst any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, dst)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string, dst any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, dst)
}

// Do performs a call and decodes the unwrapped payload into dst. dst may be
// nil when the caller does not need the response.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	raw, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if dst == nil {
		return nil
	}
	payload := unwrap(raw)
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// List performs a GET and returns the body as sent. List bodies keep their
// envelope so pagination beside data survives decoding.
func (c *Client) List(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.roundTrip(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	start := time.Now()

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		mapped := c.transportError(err)
		observe(method, start, StatusCode(mapped), mapped)
		logger.FromContext(ctx).WarnContext(ctx, "celler hut api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", mapped.Error()),
		)
		return nil, mapped
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		observe(method, start, 0, err)
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	observe(method, start, resp.StatusCode, nil)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, raw)
		logger.FromContext(ctx).DebugContext(ctx, "celler hut api returned error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return nil, apiErr
	}
	return raw, nil
}

// Health calls GET {base}/health with its own short timeout. It bypasses the
// circuit breaker so readiness reflects the upstream as it is now.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp, err := c.probe.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return c.transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		return parseError(resp.StatusCode, body)
	}
	return nil
}

// BreakerState exposes the circuit breaker state for diagnostics.
func (c *Client) BreakerState() gobreaker.State {
	return c.http.State()
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := resolveToken(ctx, c.tokens); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.CorrelationHeader, id)
	}
	return req, nil
}

// transportError maps errors from the resilient client. 5xx responses come
// back from the breaker as *httpclient.StatusError and keep their body.
func (c *Client) transportError(err error) error {
	var statusErr *httpclient.StatusError
	switch {
	case errors.As(err, &statusErr):
		return parseError(statusErr.StatusCode, statusErr.Body)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("celler hut api call canceled: %w", err)
	case httpclient.IsTimeout(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		// Connection failures and breaker rejections alike: no response.
		return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
	}
}
