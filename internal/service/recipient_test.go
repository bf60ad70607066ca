package service_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/disparo-queue/internal/models"
	"github.com/popeskul/disparo-queue/internal/service"
)

func TestResolveRecipient(t *testing.T) {
	contatoID := uuid.New()
	semTelefone := uuid.New()
	grupoID := uuid.New()
	semJID := uuid.New()

	dir := &models.Directory{
		Contatos: map[uuid.UUID]*models.Contato{
			contatoID: {
				ID:        contatoID,
				Nome:      "Ana",
				Telefone:  sql.NullString{String: "+55 (11) 99999-0000", Valid: true},
				Atributos: models.JSONMap{"cidade": "Recife"},
			},
			semTelefone: {
				ID:       semTelefone,
				Nome:     "Sem telefone",
				Telefone: sql.NullString{String: "n/a", Valid: true},
			},
		},
		Grupos: map[uuid.UUID]*models.Grupo{
			grupoID: {
				ID:       grupoID,
				Nome:     "Clientes VIP",
				GrupoJID: sql.NullString{String: "120363025@g.us", Valid: true},
			},
			semJID: {ID: semJID, Nome: "Sem JID"},
		},
	}

	t.Run("contact", func(t *testing.T) {
		r, err := service.ResolveRecipient(&models.DisparoDetalhe{ContatoID: uuid.NullUUID{UUID: contatoID, Valid: true}}, dir)
		require.NoError(t, err)
		assert.Equal(t, "5511999990000@s.whatsapp.net", r.Destination)
		assert.Equal(t, "Ana", r.Name)
		assert.Equal(t, "Recife", r.Attributes["cidade"])
	})

	t.Run("group", func(t *testing.T) {
		r, err := service.ResolveRecipient(&models.DisparoDetalhe{GrupoID: uuid.NullUUID{UUID: grupoID, Valid: true}}, dir)
		require.NoError(t, err)
		assert.Equal(t, "120363025@g.us", r.Destination)
		assert.Equal(t, "Clientes VIP", r.Name)
	})

	t.Run("group wins over contact", func(t *testing.T) {
		r, err := service.ResolveRecipient(&models.DisparoDetalhe{
			GrupoID:   uuid.NullUUID{UUID: grupoID, Valid: true},
			ContatoID: uuid.NullUUID{UUID: contatoID, Valid: true},
		}, dir)
		require.NoError(t, err)
		assert.Equal(t, "120363025@g.us", r.Destination)
	})

	failures := []struct {
		name        string
		detail      *models.DisparoDetalhe
		expectedErr error
	}{
		{
			name:        "missing contact",
			detail:      &models.DisparoDetalhe{ContatoID: uuid.NullUUID{UUID: uuid.New(), Valid: true}},
			expectedErr: service.ErrRecipientNotFound,
		},
		{
			name:        "phone without digits",
			detail:      &models.DisparoDetalhe{ContatoID: uuid.NullUUID{UUID: semTelefone, Valid: true}},
			expectedErr: service.ErrRecipientNotFound,
		},
		{
			name:        "missing group",
			detail:      &models.DisparoDetalhe{GrupoID: uuid.NullUUID{UUID: uuid.New(), Valid: true}},
			expectedErr: service.ErrRecipientNotFound,
		},
		{
			name:        "group without jid",
			detail:      &models.DisparoDetalhe{GrupoID: uuid.NullUUID{UUID: semJID, Valid: true}},
			expectedErr: service.ErrRecipientNotFound,
		},
		{
			name:        "neither contact nor group",
			detail:      &models.DisparoDetalhe{},
			expectedErr: service.ErrInvalidTarget,
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			r, err := service.ResolveRecipient(tt.detail, dir)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
