package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetSettings returns the stored values for keys. Absent keys are omitted.
func (r *settingsRepository) GetSettings(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query := `SELECT chave, valor FROM configuracoes WHERE chave = ANY($1)`

	var rows []struct {
		Chave string `db:"chave"`
		Valor string `db:"valor"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.StringArray(keys)); err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	for _, row := range rows {
		out[row.Chave] = row.Valor
	}

	return out, nil
}
