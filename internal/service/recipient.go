package service

import (
	"fmt"
	"strings"

	"github.com/popeskul/disparo-queue/internal/models"
)

// individualChatSuffix turns a phone number into a gateway chat id.
const individualChatSuffix = "@s.whatsapp.net"

// Recipient is where a detail row is delivered and what its template sees.
type Recipient struct {
	Destination string
	Name        string
	Attributes  map[string]any
}

// ResolveRecipient maps a detail row to its destination using the
// prefetched directory. Groups take precedence over contacts.
func ResolveRecipient(detail *models.DisparoDetalhe, dir *models.Directory) (*Recipient, error) {
	switch {
	case detail.GrupoID.Valid:
		grupo, ok := dir.Grupos[detail.GrupoID.UUID]
		if !ok {
			return nil, fmt.Errorf("grupo %s: %w", detail.GrupoID.UUID, ErrRecipientNotFound)
		}
		jid := strings.TrimSpace(grupo.GrupoJID.String)
		if jid == "" {
			return nil, fmt.Errorf("grupo %s has no jid: %w", grupo.ID, ErrRecipientNotFound)
		}
		return &Recipient{
			Destination: jid,
			Name:        grupo.Nome,
			Attributes:  grupo.Atributos,
		}, nil

	case detail.ContatoID.Valid:
		contato, ok := dir.Contatos[detail.ContatoID.UUID]
		if !ok {
			return nil, fmt.Errorf("contato %s: %w", detail.ContatoID.UUID, ErrRecipientNotFound)
		}
		number := digitsOnly(contato.Telefone.String)
		if number == "" {
			return nil, fmt.Errorf("contato %s has no phone: %w", contato.ID, ErrRecipientNotFound)
		}
		return &Recipient{
			Destination: number + individualChatSuffix,
			Name:        contato.Nome,
			Attributes:  contato.Atributos,
		}, nil

	default:
		return nil, ErrInvalidTarget
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
