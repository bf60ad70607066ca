// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/popeskul/disparo-queue/internal/api"
)

type DetailStatus = api.DetailStatus

const (
	DetailStatusPending    = api.Pending
	DetailStatusProcessing = api.Processing
	DetailStatusSent       = api.Sent
	DetailStatusFailed     = api.Failed
)

// Broadcast-level states. Completed is written verbatim as the UI expects it.
const (
	DisparoStatusPending   = "pending"
	DisparoStatusCompleted = "Concluído"
)

// Disparo is one campaign: a message template sent to many recipients.
type Disparo struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	UserID      uuid.UUID      `db:"user_id" json:"user_id"`
	Nome        string         `db:"nome" json:"nome"`
	Alvos       pq.StringArray `db:"alvos" json:"alvos"`
	Status      string         `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
	ConcluidoEm sql.NullTime   `db:"concluido_em" json:"concluido_em,omitempty"`
}

// DisparoDetalhe is one recipient's unit of work within a Disparo. Exactly
// one of ContatoID and GrupoID is expected to be set.
type DisparoDetalhe struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	DisparoID    uuid.UUID      `db:"disparo_id" json:"disparo_id"`
	ContatoID    uuid.NullUUID  `db:"contato_id" json:"contato_id,omitempty"`
	GrupoID      uuid.NullUUID  `db:"grupo_id" json:"grupo_id,omitempty"`
	ConexaoID    uuid.NullUUID  `db:"conexao_id" json:"conexao_id,omitempty"`
	Mensagem     string         `db:"mensagem" json:"mensagem"`
	Payload      JSONMap        `db:"payload" json:"payload,omitempty"`
	Status       DetailStatus   `db:"status" json:"status"`
	DataAgendada time.Time      `db:"data_agendada" json:"data_agendada"`
	DataEnvio    sql.NullTime   `db:"data_envio" json:"data_envio,omitempty"`
	StatusHTTP   sql.NullInt32  `db:"status_http" json:"status_http,omitempty"`
	RespostaHTTP RawJSON        `db:"resposta_http" json:"resposta_http,omitempty"`
	MensagemErro sql.NullString `db:"mensagem_erro" json:"mensagem_erro,omitempty"`
	Tentativas   int            `db:"tentativas" json:"tentativas"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// DeliveryResult is the terminal outcome recorded for a detail row.
type DeliveryResult struct {
	Status       DetailStatus
	StatusHTTP   *int
	RespostaHTTP RawJSON
	Error        *string
	SentAt       *time.Time
}

// QueueResult aggregates one drain pass.
type QueueResult struct {
	Processed    int
	Success      int
	Failed       int
	Skipped      int
	PendingCount int
	Duration     time.Duration
}

// StatusCounts holds the number of detail rows per status for one Disparo.
type StatusCounts map[DetailStatus]int64

// Total sums every status bucket.
func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}
