package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akhileshasapu/passvault/internal/models"
	"github.com/akhileshasapu/passvault/internal/store"
	"github.com/google/uuid"
)

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

type TokenIssuer interface {
	Issue(identity TokenIdentity) (string, error)
}

type LoginResult struct {
	Token     string
	AccountID uuid.UUID
	Username  string
}

type AuthService struct {
	accounts store.AccountStore
	hasher   Hasher
	tokens   TokenIssuer
	log      *slog.Logger
}

func NewAuthService(accounts store.AccountStore, hasher Hasher, tokens TokenIssuer, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		log:      log.With("component", "auth"),
	}
}

// Signup registers a new account. Email comparison is exact and case-sensitive.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*models.Account, error) {
	if err := requireFields(
		field{"username", username},
		field{"email", email},
	); err != nil {
		return nil, err
	}
	if err := requireSecret("password", password); err != nil {
		return nil, err
	}

	_, err := s.accounts.GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateAccount
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.CreateAccount(ctx, username, email, digest)
	if err != nil {
		// lost a race against a concurrent signup; the unique index decided
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "account created", "account_id", account.ID)
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := requireFields(field{"email", email}); err != nil {
		return nil, err
	}
	if err := requireSecret("password", password); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.InfoContext(ctx, "login failed", "reason", NoSuchAccount.String())
			return nil, &AuthError{Kind: NoSuchAccount}
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.log.InfoContext(ctx, "login failed", "account_id", account.ID, "reason", BadCredentials.String())
		return nil, &AuthError{Kind: BadCredentials}
	}

	token, err := s.tokens.Issue(TokenIdentity{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "login succeeded", "account_id", account.ID)
	return &LoginResult{
		Token:     token,
		AccountID: account.ID,
		Username:  account.Username,
	}, nil
}

func (s *AuthService) Me(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

type field struct {
	name  string
	value string
}

// requireFields rejects empty or whitespace-only identity values.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Reason: "is required"}
		}
	}
	return nil
}

// requireSecret rejects only the empty string; whitespace is a valid secret.
func requireSecret(name, value string) error {
	if value == "" {
		return &ValidationError{Field: name, Reason: "is required"}
	}
	return nil
}
