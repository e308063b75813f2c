package testutil

import (
	"context"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email, password string) (*models.Account, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResult), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockVaultService mocks the VaultService
type MockVaultService struct {
	mock.Mock
}

func (m *MockVaultService) Create(ctx context.Context, callerID uuid.UUID, site, siteUsername, siteSecret string) (*models.VaultEntry, error) {
	args := m.Called(ctx, callerID, site, siteUsername, siteSecret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VaultEntry), args.Error(1)
}

func (m *MockVaultService) ListForOwner(ctx context.Context, callerID uuid.UUID) ([]models.VaultEntry, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VaultEntry), args.Error(1)
}

func (m *MockVaultService) Delete(ctx context.Context, callerID, entryID uuid.UUID) error {
	args := m.Called(ctx, callerID, entryID)
	return args.Error(0)
}

// MockPinger mocks a store health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAuthEvents mocks the auth event counter
type MockAuthEvents struct {
	mock.Mock
}

func (m *MockAuthEvents) AuthEvent(event, outcome string) {
	m.Called(event, outcome)
}
