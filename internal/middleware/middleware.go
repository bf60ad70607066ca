// Package middleware holds the HTTP middleware chain of the disparo API.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration

	// TriggerToken guards POST endpoints when non-empty.
	TriggerToken string
}

// Chain creates a middleware chain with all configured middleware. The
// returned stop function releases the rate limiter.
func Chain(config *Config) (func(http.Handler) http.Handler, func()) {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	chain := func(handler http.Handler) http.Handler {
		// Outer to inner: Logger, RequestID, Recovery, CORS, rate limit, auth, timeout.
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = TriggerAuth(config.TriggerToken)(h)

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}

	return chain, rateLimiter.Stop
}
