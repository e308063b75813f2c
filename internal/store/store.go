// Package store persists accounts and vault entries.
package store

import (
	"context"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/google/uuid"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, username, email, passwordHash string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// VaultStore operations are always filtered by owner.
type VaultStore interface {
	CreateEntry(ctx context.Context, ownerID uuid.UUID, site, username, password string) (*models.VaultEntry, error)
	ListEntriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VaultEntry, error)
	DeleteEntryForOwner(ctx context.Context, entryID, ownerID uuid.UUID) error
}

type Store interface {
	AccountStore
	VaultStore
	Ping(ctx context.Context) error
}
