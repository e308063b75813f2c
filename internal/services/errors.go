package services

import (
	"errors"
	"fmt"

	"github.com/akhileshasapu/passvault/internal/store"
)

var (
	ErrDuplicateAccount   = fmt.Errorf("account already exists: %w", store.ErrDuplicate)
	ErrAccountNotFound    = fmt.Errorf("account not found: %w", store.ErrNotFound)
	ErrVaultEntryNotFound = fmt.Errorf("vault entry not found: %w", store.ErrNotFound)
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type AuthErrorKind int

const (
	NoSuchAccount AuthErrorKind = iota + 1
	BadCredentials
)

func (k AuthErrorKind) String() string {
	switch k {
	case NoSuchAccount:
		return "no such account"
	case BadCredentials:
		return "bad credentials"
	default:
		return "unknown"
	}
}

type AuthError struct {
	Kind AuthErrorKind
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Kind.String()
}

type VerificationErrorKind int

const (
	Malformed VerificationErrorKind = iota + 1
	BadSignature
	Expired
)

func (k VerificationErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case BadSignature:
		return "bad signature"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

type VerificationError struct {
	Kind VerificationErrorKind
	Err  error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
	}
	return "token " + e.Kind.String()
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when a service is built without a required setting.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return "missing required setting: " + e.Setting
}

// IsAuthError reports whether err is an AuthError of the given kind.
func IsAuthError(err error, kind AuthErrorKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}

// IsVerificationError reports whether err is a VerificationError of the given kind.
func IsVerificationError(err error, kind VerificationErrorKind) bool {
	var vErr *VerificationError
	return errors.As(err, &vErr) && vErr.Kind == kind
}
