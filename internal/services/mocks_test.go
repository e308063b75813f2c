package services

import (
	"context"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) CreateAccount(ctx context.Context, username, email, passwordHash string) (*models.Account, error) {
	args := m.Called(ctx, username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type mockVaultStore struct {
	mock.Mock
}

func (m *mockVaultStore) CreateEntry(ctx context.Context, ownerID uuid.UUID, site, username, password string) (*models.VaultEntry, error) {
	args := m.Called(ctx, ownerID, site, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VaultEntry), args.Error(1)
}

func (m *mockVaultStore) ListEntriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VaultEntry, error) {
	args := m.Called(ctx, ownerID)
	entries, _ := args.Get(0).([]models.VaultEntry)
	return entries, args.Error(1)
}

func (m *mockVaultStore) DeleteEntryForOwner(ctx context.Context, entryID, ownerID uuid.UUID) error {
	args := m.Called(ctx, entryID, ownerID)
	return args.Error(0)
}
