package service

import (
	"time"

	"github.com/popeskul/disparo-queue/internal/api"
)

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	LastRun              *RunStatus                            `json:"last_run,omitempty"`
}

// RunStatus describes the most recent drain pass.
type RunStatus struct {
	StartedAt time.Time `json:"started_at"`
	Processed int       `json:"processed"`
	Error     string    `json:"error,omitempty"`
}
