package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/disparo-queue/internal/models"
)

type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) DirectoryRepository {
	return &directoryRepository{
		db: db,
	}
}

func (r *directoryRepository) GetConexoes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Conexao, error) {
	out := make(map[uuid.UUID]*models.Conexao, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id, user_id, nome, instance_name, api_key
		FROM conexoes
		WHERE id = ANY($1::uuid[])
	`

	var rows []*models.Conexao
	if err := r.db.SelectContext(ctx, &rows, query, uuidArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to get conexoes: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row
	}

	return out, nil
}

func (r *directoryRepository) GetContatos(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Contato, error) {
	out := make(map[uuid.UUID]*models.Contato, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id, user_id, nome, telefone, atributos
		FROM contatos
		WHERE id = ANY($1::uuid[])
	`

	var rows []*models.Contato
	if err := r.db.SelectContext(ctx, &rows, query, uuidArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to get contatos: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row
	}

	return out, nil
}

func (r *directoryRepository) GetGrupos(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Grupo, error) {
	out := make(map[uuid.UUID]*models.Grupo, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id, user_id, nome, grupo_jid, atributos
		FROM grupos
		WHERE id = ANY($1::uuid[])
	`

	var rows []*models.Grupo
	if err := r.db.SelectContext(ctx, &rows, query, uuidArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to get grupos: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row
	}

	return out, nil
}

func uuidArray(ids []uuid.UUID) pq.StringArray {
	arr := make(pq.StringArray, len(ids))
	for i, id := range ids {
		arr[i] = id.String()
	}
	return arr
}
