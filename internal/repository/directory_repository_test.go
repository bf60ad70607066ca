package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/disparo-queue/internal/repository"
)

func TestDirectoryRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	cleanupTestData(t, db)

	repo := repository.NewDirectoryRepository(db)
	ctx := context.Background()

	withKey := insertConexao(t, db, "loja-1", ptr("conn-key"))
	withoutKey := insertConexao(t, db, "loja-2", nil)
	ana := insertContato(t, db, "Ana", "+55 11 99999-0000", `{"cidade":"Recife","pontos":120}`)
	grupo := insertGrupo(t, db, "Clientes VIP", "120363025@g.us")

	t.Run("conexoes", func(t *testing.T) {
		conexoes, err := repo.GetConexoes(ctx, []uuid.UUID{withKey, withoutKey, uuid.New()})
		require.NoError(t, err)
		require.Len(t, conexoes, 2)
		assert.Equal(t, "loja-1", conexoes[withKey].InstanceName)
		assert.Equal(t, "conn-key", conexoes[withKey].APIKey.String)
		assert.False(t, conexoes[withoutKey].APIKey.Valid)
	})

	t.Run("contatos", func(t *testing.T) {
		contatos, err := repo.GetContatos(ctx, []uuid.UUID{ana})
		require.NoError(t, err)
		require.Contains(t, contatos, ana)
		assert.Equal(t, "Ana", contatos[ana].Nome)
		assert.Equal(t, "+55 11 99999-0000", contatos[ana].Telefone.String)
		assert.Equal(t, "Recife", contatos[ana].Atributos["cidade"])
		assert.Equal(t, float64(120), contatos[ana].Atributos["pontos"])
	})

	t.Run("grupos", func(t *testing.T) {
		grupos, err := repo.GetGrupos(ctx, []uuid.UUID{grupo})
		require.NoError(t, err)
		require.Contains(t, grupos, grupo)
		assert.Equal(t, "120363025@g.us", grupos[grupo].GrupoJID.String)
		assert.Nil(t, grupos[grupo].Atributos)
	})

	t.Run("empty id list skips the query", func(t *testing.T) {
		grupos, err := repo.GetGrupos(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, grupos)
	})
}

func TestSettingsRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	cleanupTestData(t, db)

	_, err := db.Exec(`INSERT INTO configuracoes (chave, valor) VALUES ('gateway_base_url', 'https://gw.example.com'), ('outro', 'x')`)
	require.NoError(t, err)

	repo := repository.NewSettingsRepository(db)
	settings, err := repo.GetSettings(context.Background(), "gateway_base_url", "gateway_api_key")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gateway_base_url": "https://gw.example.com"}, settings)
}
