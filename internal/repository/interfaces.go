package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/disparo-queue/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Disparo() DisparoRepository
	Directory() DirectoryRepository
	Settings() SettingsRepository
}

// DisparoRepository covers broadcasts and their detail rows.
type DisparoRepository interface {
	GetDueDetails(ctx context.Context, now time.Time, limit int) ([]*models.DisparoDetalhe, error)
	// ClaimDetail moves a row from pending to processing. It reports false
	// when another run already claimed the row.
	ClaimDetail(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseDetail(ctx context.Context, id uuid.UUID) error
	CompleteDetail(ctx context.Context, id uuid.UUID, result *models.DeliveryResult) error
	CountOpenDetails(ctx context.Context, disparoID uuid.UUID) (int64, error)
	// MarkDisparoCompleted reports whether this call performed the transition.
	MarkDisparoCompleted(ctx context.Context, disparoID uuid.UUID) (bool, error)

	GetDisparo(ctx context.Context, id uuid.UUID) (*models.Disparo, error)
	GetStatusCounts(ctx context.Context, disparoID uuid.UUID) (models.StatusCounts, error)
	ListDetails(ctx context.Context, disparoID uuid.UUID, status *models.DetailStatus, offset, limit int) ([]*models.DisparoDetalhe, error)
	CountDetails(ctx context.Context, disparoID uuid.UUID, status *models.DetailStatus) (int64, error)
}

// DirectoryRepository loads recipients and gateway connections in bulk.
type DirectoryRepository interface {
	GetConexoes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Conexao, error)
	GetContatos(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Contato, error)
	GetGrupos(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Grupo, error)
}

// SettingsRepository reads the configuracoes key/value store.
type SettingsRepository interface {
	GetSettings(ctx context.Context, keys ...string) (map[string]string, error)
}
