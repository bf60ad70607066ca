package gateway

import (
	"errors"
	"fmt"

	"github.com/popeskul/disparo-queue/internal/models"
)

var (
	// ErrCircuitOpen is returned without calling the gateway while the
	// circuit breaker is open or saturated in half-open state.
	ErrCircuitOpen = errors.New("gateway unavailable: circuit breaker is open")

	ErrMissingCredentials = errors.New("gateway credentials are incomplete")
)

// GatewayError reports a non-2xx answer from the gateway.
type GatewayError struct {
	StatusCode int
	Body       models.RawJSON
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, truncate(string(e.Body), 200))
}

// Retryable reports whether the failure is on the gateway side.
func (e *GatewayError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
