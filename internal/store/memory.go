package store

import (
	"context"
	"sync"
	"time"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. Used with STORE_DRIVER=memory and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]models.Account
	byEmail  map[string]uuid.UUID
	entries  []models.VaultEntry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[uuid.UUID]models.Account),
		byEmail:  make(map[string]uuid.UUID),
		now:      time.Now,
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) CreateAccount(ctx context.Context, username, email, passwordHash string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrDuplicate
	}

	account := models.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	s.accounts[account.ID] = account
	s.byEmail[email] = account.ID
	return &account, nil
}

func (s *MemoryStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	account := s.accounts[id]
	return &account, nil
}

func (s *MemoryStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (s *MemoryStore) CreateEntry(ctx context.Context, ownerID uuid.UUID, site, username, password string) (*models.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.VaultEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Site:      site,
		Username:  username,
		Password:  password,
		CreatedAt: s.now().UTC(),
	}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *MemoryStore) ListEntriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.VaultEntry{}
	for _, e := range s.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteEntryForOwner(ctx context.Context, entryID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == entryID && e.OwnerID == ownerID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
