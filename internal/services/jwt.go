package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultIssuer = "passvault"

type JWTService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenIdentity is the identity embedded in a session token.
type TokenIdentity struct {
	AccountID uuid.UUID
	Username  string
	Email     string
}

// NewJWTService fails with a ConfigError when secret is empty or expiry is not positive.
func NewJWTService(secret string, expiry time.Duration, issuer string) (*JWTService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, &ConfigError{Setting: "JWT_SECRET"}
	}
	if expiry <= 0 {
		return nil, &ConfigError{Setting: "JWT_EXPIRY"}
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source used for issuing and verifying.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) Expiry() time.Duration {
	return s.expiry
}

func (s *JWTService) Issue(identity TokenIdentity) (string, error) {
	now := s.now()

	claims := Claims{
		AccountID: identity.AccountID,
		Username:  identity.Username,
		Email:     identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   identity.AccountID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == uuid.Nil {
		return nil, &VerificationError{Kind: Malformed}
	}
	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &VerificationError{Kind: Malformed, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return &VerificationError{Kind: BadSignature, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerificationError{Kind: Expired, Err: err}
	default:
		return &VerificationError{Kind: Malformed, Err: err}
	}
}
