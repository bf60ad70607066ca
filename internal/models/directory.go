package models

import (
	"database/sql"

	"github.com/google/uuid"
)

// Conexao is a gateway account/session owned by a user.
type Conexao struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	UserID       uuid.UUID      `db:"user_id" json:"user_id"`
	Nome         string         `db:"nome" json:"nome"`
	InstanceName string         `db:"instance_name" json:"instance_name"`
	APIKey       sql.NullString `db:"api_key" json:"-"`
}

// Contato is an individual recipient.
type Contato struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	Nome      string         `db:"nome" json:"nome"`
	Telefone  sql.NullString `db:"telefone" json:"telefone,omitempty"`
	Atributos JSONMap        `db:"atributos" json:"atributos,omitempty"`
}

// Grupo is a WhatsApp group addressed by its gateway-native JID.
type Grupo struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	Nome      string         `db:"nome" json:"nome"`
	GrupoJID  sql.NullString `db:"grupo_jid" json:"grupo_jid,omitempty"`
	Atributos JSONMap        `db:"atributos" json:"atributos,omitempty"`
}

// Directory holds the records referenced by one batch, keyed by id.
type Directory struct {
	Conexoes map[uuid.UUID]*Conexao
	Contatos map[uuid.UUID]*Contato
	Grupos   map[uuid.UUID]*Grupo
}
