package service

import "errors"

var (
	// ErrConfigurationMissing aborts a drain pass before any row is claimed.
	ErrConfigurationMissing = errors.New("gateway configuration missing")

	// ErrRecipientNotFound marks a row whose contact or group is gone or has no address.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrInvalidTarget marks a row that references neither a contact nor a group.
	ErrInvalidTarget = errors.New("invalid target: row references neither contact nor group")

	// ErrConnectionNotFound marks a row whose conexao no longer exists.
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrDisparoNotFound is returned by progress and listing lookups for unknown ids.
	ErrDisparoNotFound = errors.New("disparo not found")
)
