package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhileshasapu/passvault/internal/database"
	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) CreateAccount(ctx context.Context, username, email, passwordHash string) (*models.Account, error) {
	var account models.Account
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO accounts (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, created_at
	`, uuid.New(), username, email, passwordHash).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *PostgresStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM accounts WHERE email = $1
	`, email).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

func (s *PostgresStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM accounts WHERE id = $1
	`, id).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (s *PostgresStore) CreateEntry(ctx context.Context, ownerID uuid.UUID, site, username, password string) (*models.VaultEntry, error) {
	var entry models.VaultEntry
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO vault_entries (id, owner_id, site, username, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, site, username, password, created_at
	`, uuid.New(), ownerID, site, username, password).Scan(
		&entry.ID, &entry.OwnerID, &entry.Site, &entry.Username, &entry.Password, &entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault entry: %w", err)
	}
	return &entry, nil
}

func (s *PostgresStore) ListEntriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VaultEntry, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, owner_id, site, username, password, created_at
		FROM vault_entries
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault entries: %w", err)
	}
	defer rows.Close()

	entries := []models.VaultEntry{}
	for rows.Next() {
		var entry models.VaultEntry
		if err := rows.Scan(
			&entry.ID, &entry.OwnerID, &entry.Site, &entry.Username, &entry.Password, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vault entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list vault entries: %w", err)
	}
	return entries, nil
}

// DeleteEntryForOwner removes the entry only when it belongs to ownerID.
// A foreign or missing entry both yield ErrNotFound.
func (s *PostgresStore) DeleteEntryForOwner(ctx context.Context, entryID, ownerID uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `
		DELETE FROM vault_entries WHERE id = $1 AND owner_id = $2
	`, entryID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete vault entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
