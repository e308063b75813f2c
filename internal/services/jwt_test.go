package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()
	svc, err := NewJWTService(secret, 24*time.Hour, "passvault-test")
	require.NoError(t, err)
	return svc
}

func testIdentity() TokenIdentity {
	return TokenIdentity{AccountID: uuid.New(), Username: "alice", Email: "a@x.com"}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		_, err := NewJWTService(secret, time.Hour, "")

		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "JWT_SECRET", cfgErr.Setting)
	}
}

func TestNewJWTService_InvalidExpiry(t *testing.T) {
	_, err := NewJWTService("secret", 0, "")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "JWT_EXPIRY", cfgErr.Setting)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	identity := testIdentity()

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, identity.AccountID, claims.AccountID)
	assert.Equal(t, identity.Username, claims.Username)
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, identity.AccountID.String(), claims.Subject)
	assert.Equal(t, "passvault-test", claims.Issuer)
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, "test-secret").WithClock(func() time.Time { return issuedAt })

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time.UTC())
	assert.Equal(t, 24*time.Hour, svc.Expiry())
}

func TestJWTService_Verify_Expired(t *testing.T) {
	issuedAt := time.Now()
	svc := newTestJWTService(t, "test-secret").WithClock(func() time.Time { return issuedAt })

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return issuedAt.Add(25 * time.Hour) })
	_, err = svc.Verify(token)

	assert.True(t, IsVerificationError(err, Expired), "got %v", err)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc1 := newTestJWTService(t, "secret-1")
	svc2 := newTestJWTService(t, "secret-2")

	token, err := svc1.Issue(testIdentity())
	require.NoError(t, err)

	_, err = svc2.Verify(token)

	assert.True(t, IsVerificationError(err, BadSignature), "got %v", err)
}

func TestJWTService_Verify_ExpiredAndWrongSecret(t *testing.T) {
	issuedAt := time.Now()
	svc1 := newTestJWTService(t, "secret-1").WithClock(func() time.Time { return issuedAt })
	svc2 := newTestJWTService(t, "secret-2").WithClock(func() time.Time { return issuedAt.Add(48 * time.Hour) })

	token, err := svc1.Issue(testIdentity())
	require.NoError(t, err)

	_, err = svc2.Verify(token)

	assert.True(t, IsVerificationError(err, BadSignature), "got %v", err)
}

func TestJWTService_Verify_NoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	identity := testIdentity()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AccountID: identity.AccountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.True(t, IsVerificationError(err, BadSignature), "got %v", err)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt-token"},
		{"partial jwt", "eyJhbGciOiJIUzI1NiJ9."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.token)
			assert.True(t, IsVerificationError(err, Malformed), "got %v", err)
		})
	}
}

func TestJWTService_Verify_MissingExpiry(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{AccountID: uuid.New()}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.True(t, IsVerificationError(err, Malformed), "got %v", err)
}

func TestJWTService_TokensDifferPerAccount(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	t1, err := svc.Issue(testIdentity())
	require.NoError(t, err)
	t2, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
