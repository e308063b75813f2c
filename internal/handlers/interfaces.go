package handlers

import (
	"context"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/google/uuid"
)

// AuthServiceInterface defines the methods used by handlers from AuthService
type AuthServiceInterface interface {
	Signup(ctx context.Context, username, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Me(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// VaultServiceInterface defines the methods used by handlers from VaultService
type VaultServiceInterface interface {
	Create(ctx context.Context, callerID uuid.UUID, site, siteUsername, siteSecret string) (*models.VaultEntry, error)
	ListForOwner(ctx context.Context, callerID uuid.UUID) ([]models.VaultEntry, error)
	Delete(ctx context.Context, callerID, entryID uuid.UUID) error
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthEventRecorder counts signup and login outcomes
type AuthEventRecorder interface {
	AuthEvent(event, outcome string)
}
