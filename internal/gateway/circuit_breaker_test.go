package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/gateway"
)

func breakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          1,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*gateway.CircuitBreaker)
		ctx           func() context.Context
		function      func() error
		expectedError error
		expectedMsg   string
	}{
		{
			name:        "function returns error",
			function:    func() error { return errors.New("dial tcp: connection refused") },
			expectedMsg: "connection refused",
		},
		{
			name: "context canceled before call",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			function:      func() error { return nil },
			expectedError: context.Canceled,
		},
		{
			name: "open after server errors",
			setup: func(cb *gateway.CircuitBreaker) {
				for i := 0; i < 5; i++ {
					_ = cb.Execute(context.Background(), func() error {
						return &gateway.GatewayError{StatusCode: 502}
					})
				}
			},
			function:      func() error { return nil },
			expectedError: gateway.ErrCircuitOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := gateway.NewCircuitBreaker(breakerConfig(), zap.NewNop())
			if tt.setup != nil {
				tt.setup(cb)
			}

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			err := cb.Execute(ctx, tt.function)
			require.Error(t, err)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			if tt.expectedMsg != "" {
				assert.Contains(t, err.Error(), tt.expectedMsg)
			}
		})
	}
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	cb := gateway.NewCircuitBreaker(breakerConfig(), zap.NewNop())

	for i := 0; i < 10; i++ {
		err := cb.Execute(context.Background(), func() error {
			return &gateway.GatewayError{StatusCode: 400}
		})
		var gwErr *gateway.GatewayError
		require.ErrorAs(t, err, &gwErr)
	}

	assert.Equal(t, api.Closed, cb.GetState())
	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(10), requests)
	assert.Equal(t, uint32(0), failures)
}

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	cb := gateway.NewCircuitBreaker(breakerConfig(), zap.NewNop())
	assert.Equal(t, api.Closed, cb.GetState())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("timeout")
		})
	}
	assert.Equal(t, api.Open, cb.GetState())

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, api.HalfOpen, cb.GetState())

	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	}
	assert.Equal(t, api.Closed, cb.GetState())
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cfg := breakerConfig()
	cfg.ConsecutiveFails = 100
	cb := gateway.NewCircuitBreaker(cfg, zap.NewNop())

	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func() error {
			if i%2 == 0 {
				return nil
			}
			return errors.New("failure")
		})
	}

	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
}
