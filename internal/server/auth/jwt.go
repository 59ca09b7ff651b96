// Package auth implements credentials and identity for the server: bcrypt
// password hashing, HS256 bearer tokens and the per-request identity resolver.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the subject's user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// The secret and lifetime are fixed at construction.
type TokenService struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

// NewTokenService returns a TokenService signing with secretKey; tokens
// expire validity after issue.
func NewTokenService(secretKey []byte, validity time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, validity: validity, now: time.Now}
}

// Issue returns a token for userID expiring after the configured lifetime.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the subject's user id.
// Every failure matches common.ErrInvalidToken; expiry also matches
// common.ErrTokenExpired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
