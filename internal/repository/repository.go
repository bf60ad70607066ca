// Package repository implements PostgreSQL persistence for broadcasts,
// recipients and runtime settings.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	disparo   DisparoRepository
	directory DirectoryRepository
	settings  SettingsRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		disparo:   NewDisparoRepository(db),
		directory: NewDirectoryRepository(db),
		settings:  NewSettingsRepository(db),
	}
}

func (r *repositoryImpl) Disparo() DisparoRepository {
	return r.disparo
}

func (r *repositoryImpl) Directory() DirectoryRepository {
	return r.directory
}

func (r *repositoryImpl) Settings() SettingsRepository {
	return r.settings
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
