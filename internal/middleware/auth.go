package middleware

import (
	"strings"

	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	AccountIDKey = "account_id"
	UsernameKey  = "username"
	EmailKey     = "email"
)

type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// Auth rejects requests without a bearer token with 401 and requests whose
// token fails verification with 403.
func Auth(verifier TokenVerifier) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			c.Forbidden("invalid or expired token")
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(UsernameKey, claims.Username)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

func GetAccountID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(AccountIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

func GetUsername(c *drift.Context) string {
	return getString(c, UsernameKey)
}

func GetEmail(c *drift.Context) string {
	return getString(c, EmailKey)
}

func getString(c *drift.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
