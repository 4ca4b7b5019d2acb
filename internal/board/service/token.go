package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/guildnet/board/pkg/idx"
	"github.com/guildnet/board/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)

// TokenService is the identity collaborator: it authenticates profiles and
// issues short-lived HS256 session tokens the HTTP layer verifies on every
// authenticated request.
type TokenService struct {
	Store  store.Store
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Login verifies the username/password pair and returns a session token plus
// the authenticated profile. Failures are indistinguishable to the caller.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, domain.Profile, error) {
	l := slogx.FromContext(ctx)

	profile, err := s.Store.Profiles().GetProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed, unknown username", slog.String("username", username))
			return "", domain.Profile{}, ErrInvalidCredentials
		}
		return "", domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := cryptox.VerifyPassword(password, profile.PasswordHash); err != nil {
		l.Info("login failed, bad password", slog.String("profile_id", profile.ID))
		return "", domain.Profile{}, ErrInvalidCredentials
	}

	token, err := s.Issue(profile.ID)
	if err != nil {
		return "", domain.Profile{}, err
	}
	return token, profile, nil
}

// Issue signs a session token for the given profile id.
func (s *TokenService) Issue(profileID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   profileID,
		ID:        idx.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the profile id it
// was issued for.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.Secret, nil
		},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ChangePassword verifies the current password and replaces it.
func (s *TokenService) ChangePassword(ctx context.Context, profileID, currentPassword, newPassword string) error {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if err := cryptox.VerifyPassword(currentPassword, profile.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.Store.Profiles().UpdatePasswordHash(ctx, profileID, hash)
}
