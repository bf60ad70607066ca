package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/disparo-queue/internal/models"
)

const detailColumns = `id, disparo_id, contato_id, grupo_id, conexao_id, mensagem, payload, status,
		data_agendada, data_envio, status_http, resposta_http, mensagem_erro, tentativas, created_at, updated_at`

type disparoRepository struct {
	db *sqlx.DB
}

func NewDisparoRepository(db *sqlx.DB) DisparoRepository {
	return &disparoRepository{
		db: db,
	}
}

// GetDueDetails returns pending rows scheduled at or before now, oldest first.
func (r *disparoRepository) GetDueDetails(ctx context.Context, now time.Time, limit int) ([]*models.DisparoDetalhe, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM disparo_detalhes
		WHERE status = $1 AND data_agendada <= $2
		ORDER BY data_agendada ASC
		LIMIT $3
	`

	var details []*models.DisparoDetalhe
	if err := r.db.SelectContext(ctx, &details, query, models.DetailStatusPending, now, limit); err != nil {
		return nil, fmt.Errorf("failed to get due details: %w", err)
	}

	return details, nil
}

// ClaimDetail is a compare-and-set on status so that overlapping drain runs
// cannot both dispatch the same row.
func (r *disparoRepository) ClaimDetail(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE disparo_detalhes
		SET status = $2,
		    tentativas = tentativas + 1,
		    updated_at = $4
		WHERE id = $1 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, id, models.DetailStatusProcessing, models.DetailStatusPending, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to claim detail: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}

	return affected == 1, nil
}

// ReleaseDetail hands a claimed row back to the queue untouched.
func (r *disparoRepository) ReleaseDetail(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE disparo_detalhes
		SET status = $2, updated_at = $4
		WHERE id = $1 AND status = $3
	`

	if _, err := r.db.ExecContext(ctx, query, id, models.DetailStatusPending, models.DetailStatusProcessing, time.Now()); err != nil {
		return fmt.Errorf("failed to release detail: %w", err)
	}

	return nil
}

// CompleteDetail records the terminal state of a claimed row.
func (r *disparoRepository) CompleteDetail(ctx context.Context, id uuid.UUID, result *models.DeliveryResult) error {
	query := `
		UPDATE disparo_detalhes
		SET status = $2,
		    status_http = $3,
		    resposta_http = $4,
		    mensagem_erro = $5,
		    data_envio = $6,
		    updated_at = $7
		WHERE id = $1 AND status = $8
	`

	var statusHTTP sql.NullInt32
	if result.StatusHTTP != nil {
		statusHTTP = sql.NullInt32{Int32: int32(*result.StatusHTTP), Valid: true}
	}

	var errMsg sql.NullString
	if result.Error != nil {
		errMsg = sql.NullString{String: *result.Error, Valid: true}
	}

	var sentAt sql.NullTime
	if result.SentAt != nil {
		sentAt = sql.NullTime{Time: *result.SentAt, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		id, result.Status, statusHTTP, result.RespostaHTTP, errMsg, sentAt, time.Now(), models.DetailStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete detail: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read completion result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("detail %s is not in %s state", id, models.DetailStatusProcessing)
	}

	return nil
}

// CountOpenDetails counts rows of a broadcast that are not terminal yet.
func (r *disparoRepository) CountOpenDetails(ctx context.Context, disparoID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM disparo_detalhes
		WHERE disparo_id = $1 AND status IN ($2, $3)
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, disparoID, models.DetailStatusPending, models.DetailStatusProcessing); err != nil {
		return 0, fmt.Errorf("failed to count open details: %w", err)
	}

	return count, nil
}

// MarkDisparoCompleted flips the broadcast to completed once.
func (r *disparoRepository) MarkDisparoCompleted(ctx context.Context, disparoID uuid.UUID) (bool, error) {
	query := `
		UPDATE disparos
		SET status = $2, concluido_em = $3, updated_at = $3
		WHERE id = $1 AND status <> $2
	`

	res, err := r.db.ExecContext(ctx, query, disparoID, models.DisparoStatusCompleted, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to complete disparo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read disparo completion result: %w", err)
	}

	return affected == 1, nil
}

func (r *disparoRepository) GetDisparo(ctx context.Context, id uuid.UUID) (*models.Disparo, error) {
	query := `
		SELECT id, user_id, nome, alvos, status, created_at, updated_at, concluido_em
		FROM disparos
		WHERE id = $1
	`

	var disparo models.Disparo
	if err := r.db.GetContext(ctx, &disparo, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("disparo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get disparo: %w", err)
	}

	return &disparo, nil
}

func (r *disparoRepository) GetStatusCounts(ctx context.Context, disparoID uuid.UUID) (models.StatusCounts, error) {
	query := `
		SELECT status, COUNT(*) AS total
		FROM disparo_detalhes
		WHERE disparo_id = $1
		GROUP BY status
	`

	var rows []struct {
		Status models.DetailStatus `db:"status"`
		Total  int64               `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, disparoID); err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	counts := make(models.StatusCounts, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}

// ListDetails pages through the rows of a broadcast, optionally filtered by status.
func (r *disparoRepository) ListDetails(ctx context.Context, disparoID uuid.UUID, status *models.DetailStatus, offset, limit int) ([]*models.DisparoDetalhe, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM disparo_detalhes
		WHERE disparo_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY data_agendada ASC, id ASC
		LIMIT $3 OFFSET $4
	`

	var details []*models.DisparoDetalhe
	if err := r.db.SelectContext(ctx, &details, query, disparoID, statusFilter(status), limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list details: %w", err)
	}

	return details, nil
}

func (r *disparoRepository) CountDetails(ctx context.Context, disparoID uuid.UUID, status *models.DetailStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM disparo_detalhes
		WHERE disparo_id = $1 AND ($2::text IS NULL OR status = $2)
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, disparoID, statusFilter(status)); err != nil {
		return 0, fmt.Errorf("failed to count details: %w", err)
	}

	return count, nil
}

func statusFilter(status *models.DetailStatus) sql.NullString {
	if status == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*status), Valid: true}
}
