package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/models"
)

const (
	apiKeyHeader    = "apikey"
	maxResponseSize = 1 << 20
)

// Credentials address one gateway instance.
type Credentials struct {
	BaseURL  string
	Instance string
	APIKey   string
}

// Response is what the gateway answered. Body is always valid JSON; an
// unparseable answer is replaced by an empty object.
type Response struct {
	StatusCode int
	Body       models.RawJSON
}

// Client performs one HTTP call per Send through a circuit breaker and an
// optional send-rate limiter.
type Client struct {
	httpClient *http.Client
	breaker    *CircuitBreaker
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewClient(cfg *config.GatewayConfig, logger *zap.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		if cfg.RatePerSecond > 1 {
			burst = int(cfg.RatePerSecond)
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Send delivers msg to the destination JID. A non-2xx answer is returned
// both as a *GatewayError and as a Response so the caller can persist it.
func (c *Client) Send(ctx context.Context, creds Credentials, to string, msg Message) (*Response, error) {
	if creds.BaseURL == "" || creds.Instance == "" || creds.APIKey == "" {
		return nil, ErrMissingCredentials
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("send rate limiter: %w", err)
	}

	endpoint, err := buildURL(creds.BaseURL, msg.path(), creds.Instance)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(msg.body(to))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result *Response
	err = c.breaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(apiKeyHeader, creds.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		result = &Response{
			StatusCode: resp.StatusCode,
			Body:       readBody(resp.Body),
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &GatewayError{StatusCode: resp.StatusCode, Body: result.Body}
		}
		return nil
	})

	c.logger.Debug("Gateway call finished",
		zap.String("kind", string(msg.Kind())),
		zap.String("instance", creds.Instance),
		zap.Bool("ok", err == nil))

	return result, err
}

// BreakerState exposes the circuit breaker for health reporting.
func (c *Client) BreakerState() (state api.HealthResponseCircuitBreakerState, requests, failures uint32) {
	state = c.breaker.GetState()
	requests, failures = c.breaker.GetCounts()
	return
}

func buildURL(baseURL, path, instance string) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid gateway base url %q", baseURL)
	}
	return u.String() + path + url.PathEscape(instance), nil
}

func readBody(r io.Reader) models.RawJSON {
	data, err := io.ReadAll(io.LimitReader(r, maxResponseSize))
	if err != nil || !json.Valid(data) {
		return models.EmptyObject
	}
	return models.RawJSON(data)
}

type sendResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
}

// MessageID extracts the gateway message id from a send response, if any.
func MessageID(body models.RawJSON) string {
	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}
	return out.Key.ID
}
