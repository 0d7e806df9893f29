// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"matchday/config"
	"matchday/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const sessionTokenTTL = 30 * 24 * time.Hour

// jwtTokenService implements service.TokenService using HS256 JWTs. The
// token is a convenience for the UI layer; authentication state itself
// lives in the persisted session record.
type jwtTokenService struct {
	secret []byte
}

// NewTokenService is the constructor for jwtTokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtTokenService{secret: []byte(cfg.SecretKey.Session)}, nil
}

// Issue creates a new session token for the given user ID.
func (s *jwtTokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// Verify checks a token and returns the user ID it was issued for.
func (s *jwtTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}

	return claims.Subject, nil
}
