package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akhileshasapu/passvault/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewPostgresStore(db), mock
}

var accountColumns = []string{"id", "username", "email", "password_hash", "created_at"}

var entryColumns = []string{"id", "owner_id", "site", "username", "password", "created_at"}

func TestPostgresStore_CreateAccount(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	accountID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(accountColumns).
		AddRow(accountID, "alice", "a@x.com", "$2a$10$hash", now)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "$2a$10$hash").
		WillReturnRows(rows)

	account, err := s.CreateAccount(ctx, "alice", "a@x.com", "$2a$10$hash")

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateAccount_DuplicateEmail(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.CreateAccount(ctx, "alice", "a@x.com", "hash")

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateAccount_DatabaseError(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hash").
		WillReturnError(errors.New("connection reset"))

	_, err := s.CreateAccount(ctx, "alice", "a@x.com", "hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "failed to create account")
}

func TestPostgresStore_GetAccountByEmail(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	rows := pgxmock.NewRows(accountColumns).
		AddRow(accountID, "alice", "a@x.com", "hash", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE email`).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	account, err := s.GetAccountByEmail(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAccountByEmail_NotFound(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE email`).
		WithArgs("nobody@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAccountByEmail(ctx, "nobody@x.com")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAccountByID_NotFound(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE id`).
		WithArgs(accountID).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAccountByID(ctx, accountID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateEntry(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	ownerID := uuid.New()
	entryID := uuid.New()

	rows := pgxmock.NewRows(entryColumns).
		AddRow(entryID, ownerID, "github", "alice", "secret", time.Now())

	mock.ExpectQuery(`INSERT INTO vault_entries`).
		WithArgs(pgxmock.AnyArg(), ownerID, "github", "alice", "secret").
		WillReturnRows(rows)

	entry, err := s.CreateEntry(ctx, ownerID, "github", "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.Equal(t, ownerID, entry.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListEntriesByOwner(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(entryColumns).
		AddRow(uuid.New(), ownerID, "github", "alice", "s1", now).
		AddRow(uuid.New(), ownerID, "gitlab", "alice", "s2", now.Add(time.Second))

	mock.ExpectQuery(`SELECT .+ FROM vault_entries\s+WHERE owner_id = \$1\s+ORDER BY created_at ASC`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	entries, err := s.ListEntriesByOwner(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "github", entries[0].Site)
	assert.Equal(t, "gitlab", entries[1].Site)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListEntriesByOwner_Empty(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM vault_entries`).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows(entryColumns))

	entries, err := s.ListEntriesByOwner(ctx, ownerID)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteEntryForOwner(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	entryID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectExec(`DELETE FROM vault_entries WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(entryID, ownerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := s.DeleteEntryForOwner(ctx, entryID, ownerID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteEntryForOwner_NoRows(t *testing.T) {
	s, mock := setupPostgresStore(t)
	ctx := context.Background()
	entryID := uuid.New()
	otherOwner := uuid.New()

	mock.ExpectExec(`DELETE FROM vault_entries`).
		WithArgs(entryID, otherOwner).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteEntryForOwner(ctx, entryID, otherOwner)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	s := NewPostgresStore(&database.DB{Pool: mock})

	mock.ExpectPing().WillReturnError(errors.New("down"))

	assert.Error(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
