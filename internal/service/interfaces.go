package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/gateway"
	"github.com/popeskul/disparo-queue/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// QueueService drains due broadcast detail rows.
type QueueService interface {
	ProcessQueue(ctx context.Context) (*models.QueueResult, error)
	LastRun() *RunStatus
	GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32)
}

// DisparoService exposes broadcast progress.
type DisparoService interface {
	GetProgress(ctx context.Context, id uuid.UUID) (*api.DisparoProgress, error)
	ListDetails(ctx context.Context, id uuid.UUID, status *api.DetailStatus, page, limit int) (*api.DetailListResponse, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// SettingsProvider supplies the system-wide gateway settings.
type SettingsProvider interface {
	GatewaySettings(ctx context.Context) (*GatewaySettings, error)
	Invalidate(ctx context.Context) error
}

// Dispatcher is the gateway client as seen by the drainer.
type Dispatcher interface {
	Send(ctx context.Context, creds gateway.Credentials, to string, msg gateway.Message) (*gateway.Response, error)
	BreakerState() (state api.HealthResponseCircuitBreakerState, requests, failures uint32)
}
