package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/disparo-queue/internal/models"
)

var testUserID = uuid.MustParse("7d0b8f5e-3c1a-4b8e-9f2d-1a2b3c4d5e6f")

func insertDisparo(t *testing.T, db *sqlx.DB, nome string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO disparos (id, user_id, nome, alvos, status) VALUES ($1, $2, $3, $4, $5)`,
		id, testUserID, nome, pq.StringArray{"lista-vip"}, models.DisparoStatusPending)
	require.NoError(t, err)
	return id
}

func insertConexao(t *testing.T, db *sqlx.DB, instance string, apiKey *string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO conexoes (id, user_id, nome, instance_name, api_key) VALUES ($1, $2, $3, $4, $5)`,
		id, testUserID, "Conexão "+instance, instance, apiKey)
	require.NoError(t, err)
	return id
}

func insertContato(t *testing.T, db *sqlx.DB, nome, telefone string, atributos string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO contatos (id, user_id, nome, telefone, atributos) VALUES ($1, $2, $3, $4, $5::jsonb)`,
		id, testUserID, nome, telefone, atributos)
	require.NoError(t, err)
	return id
}

func insertGrupo(t *testing.T, db *sqlx.DB, nome, jid string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO grupos (id, user_id, nome, grupo_jid) VALUES ($1, $2, $3, $4)`,
		id, testUserID, nome, jid)
	require.NoError(t, err)
	return id
}

type detailFixture struct {
	DisparoID    uuid.UUID
	ContatoID    *uuid.UUID
	GrupoID      *uuid.UUID
	ConexaoID    *uuid.UUID
	Mensagem     string
	Status       models.DetailStatus
	DataAgendada time.Time
}

func insertDetail(t *testing.T, db *sqlx.DB, f detailFixture) uuid.UUID {
	t.Helper()
	if f.Status == "" {
		f.Status = models.DetailStatusPending
	}
	id := uuid.New()
	_, err := db.Exec(`
		INSERT INTO disparo_detalhes (id, disparo_id, contato_id, grupo_id, conexao_id, mensagem, payload, status, data_agendada)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, f.DisparoID, f.ContatoID, f.GrupoID, f.ConexaoID, f.Mensagem,
		models.JSONMap{"media": map[string]any{"type": "image", "url": "https://cdn.example.com/a.png"}},
		f.Status, f.DataAgendada)
	require.NoError(t, err)
	return id
}

func detailStatus(t *testing.T, db *sqlx.DB, id uuid.UUID) models.DetailStatus {
	t.Helper()
	var status models.DetailStatus
	require.NoError(t, db.Get(&status, `SELECT status FROM disparo_detalhes WHERE id = $1`, id))
	return status
}

func ptr[T any](v T) *T {
	return &v
}
