package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/store"
)

// Fixtures creates test records through a Store
type Fixtures struct {
	store   store.Store
	counter int
}

func NewFixtures(s store.Store) *Fixtures {
	return &Fixtures{store: s}
}

// CreateAccount inserts an account with a unique email and a placeholder digest
func (f *Fixtures) CreateAccount(t *testing.T) *models.Account {
	t.Helper()
	f.counter++

	account, err := f.store.CreateAccount(context.Background(),
		fmt.Sprintf("user%d", f.counter),
		fmt.Sprintf("user%d@example.com", f.counter),
		"$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
	)
	if err != nil {
		t.Fatalf("failed to create account fixture: %v", err)
	}
	return account
}

// CreateEntry inserts a vault entry for owner
func (f *Fixtures) CreateEntry(t *testing.T, owner *models.Account, site string) *models.VaultEntry {
	t.Helper()
	f.counter++

	entry, err := f.store.CreateEntry(context.Background(), owner.ID, site,
		fmt.Sprintf("login%d", f.counter),
		fmt.Sprintf("secret%d", f.counter),
	)
	if err != nil {
		t.Fatalf("failed to create vault entry fixture: %v", err)
	}
	return entry
}
