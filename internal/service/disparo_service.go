package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/models"
	"github.com/popeskul/disparo-queue/internal/repository"
)

type disparoService struct {
	repo repository.Repository
}

func NewDisparoService(repo repository.Repository) DisparoService {
	return &disparoService{
		repo: repo,
	}
}

// GetProgress returns a broadcast with the number of rows in each status.
func (s *disparoService) GetProgress(ctx context.Context, id uuid.UUID) (*api.DisparoProgress, error) {
	disparo, err := s.repo.Disparo().GetDisparo(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDisparoNotFound, id)
		}
		return nil, fmt.Errorf("failed to get disparo: %w", err)
	}

	counts, err := s.repo.Disparo().GetStatusCounts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	progress := &api.DisparoProgress{
		Id:         disparo.ID,
		Nome:       disparo.Nome,
		Status:     disparo.Status,
		CreatedAt:  disparo.CreatedAt,
		Total:      counts.Total(),
		Pending:    counts[models.DetailStatusPending],
		Processing: counts[models.DetailStatusProcessing],
		Sent:       counts[models.DetailStatusSent],
		Failed:     counts[models.DetailStatusFailed],
	}
	if disparo.ConcluidoEm.Valid {
		progress.ConcluidoEm = &disparo.ConcluidoEm.Time
	}

	return progress, nil
}

// ListDetails retrieves the rows of a broadcast with pagination.
func (s *disparoService) ListDetails(ctx context.Context, id uuid.UUID, status *api.DetailStatus, page, limit int) (*api.DetailListResponse, error) {
	if _, err := s.repo.Disparo().GetDisparo(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDisparoNotFound, id)
		}
		return nil, fmt.Errorf("failed to get disparo: %w", err)
	}

	offset := (page - 1) * limit

	details, err := s.repo.Disparo().ListDetails(ctx, id, status, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list details: %w", err)
	}

	totalCount, err := s.repo.Disparo().CountDetails(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	items := make([]api.Detail, 0, len(details))
	for _, d := range details {
		items = append(items, toAPIDetail(d))
	}

	return &api.DetailListResponse{
		Detalhes: items,
		Pagination: api.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: limit,
		},
	}, nil
}

func toAPIDetail(d *models.DisparoDetalhe) api.Detail {
	item := api.Detail{
		Id:           d.ID,
		Status:       d.Status,
		DataAgendada: d.DataAgendada,
		Tentativas:   d.Tentativas,
	}

	if d.ContatoID.Valid {
		item.ContatoId = &d.ContatoID.UUID
	}
	if d.GrupoID.Valid {
		item.GrupoId = &d.GrupoID.UUID
	}
	if d.DataEnvio.Valid {
		item.DataEnvio = &d.DataEnvio.Time
	}
	if d.StatusHTTP.Valid {
		code := int(d.StatusHTTP.Int32)
		item.StatusHttp = &code
	}
	if d.MensagemErro.Valid {
		item.MensagemErro = &d.MensagemErro.String
	}

	return item
}
