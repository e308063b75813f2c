package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/store"
	"github.com/google/uuid"
)

// VaultService scopes every operation to the calling account.
type VaultService struct {
	entries store.VaultStore
	log     *slog.Logger
}

func NewVaultService(entries store.VaultStore, log *slog.Logger) *VaultService {
	if log == nil {
		log = slog.Default()
	}
	return &VaultService{
		entries: entries,
		log:     log.With("component", "vault"),
	}
}

// Create saves a new entry owned by callerID. Duplicate sites are allowed.
func (s *VaultService) Create(ctx context.Context, callerID uuid.UUID, site, siteUsername, siteSecret string) (*models.VaultEntry, error) {
	if callerID == uuid.Nil {
		return nil, &ValidationError{Field: "owner", Reason: "is required"}
	}
	if err := requireFields(
		field{"site", site},
		field{"username", siteUsername},
	); err != nil {
		return nil, err
	}
	if err := requireSecret("password", siteSecret); err != nil {
		return nil, err
	}

	entry, err := s.entries.CreateEntry(ctx, callerID, site, siteUsername, siteSecret)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vault entry created", "account_id", callerID, "entry_id", entry.ID)
	return entry, nil
}

func (s *VaultService) ListForOwner(ctx context.Context, callerID uuid.UUID) ([]models.VaultEntry, error) {
	entries, err := s.entries.ListEntriesByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}
	return entries, nil
}

// Delete removes entryID only if callerID owns it. Missing and foreign entries
// both return ErrVaultEntryNotFound.
func (s *VaultService) Delete(ctx context.Context, callerID, entryID uuid.UUID) error {
	if err := s.entries.DeleteEntryForOwner(ctx, entryID, callerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrVaultEntryNotFound
		}
		return err
	}

	s.log.InfoContext(ctx, "vault entry deleted", "account_id", callerID, "entry_id", entryID)
	return nil
}
