package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/guildnet/board/pkg/idx"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type RegistrationService struct {
	Store   store.Store
	Confirm *ConfirmationService
}

// Register creates a new unconfirmed profile, issues its first confirmation
// code and enqueues the confirmation mail. The profile cannot post, respond
// or subscribe until the code is submitted.
func (s *RegistrationService) Register(ctx context.Context, username, displayName, email, password string) (domain.Profile, error) {
	// 1. Fast-path uniqueness checks for friendly errors. The UNIQUE
	// constraints remain the source of truth under races.
	if _, err := s.Store.Profiles().GetProfileByUsername(ctx, username); err == nil {
		return domain.Profile{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.Store.Profiles().GetProfileByEmail(ctx, email); err == nil {
		return domain.Profile{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, fmt.Errorf("failed to check email: %w", err)
	}

	// 2. Hash the password and generate the per-profile HOTP secret
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	secret, err := cryptox.GenerateSecret(cryptox.TokenSize128)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to generate confirmation secret: %w", err)
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		ID:             idx.New().String(),
		Username:       username,
		DisplayName:    displayName,
		Email:          email,
		PasswordHash:   hash,
		EmailConfirmed: false,
		ConfirmSecret:  secret,
		ConfirmCounter: 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 3. Create the profile and its first confirmation code in one
	// transaction so the confirmation mail only exists alongside the row.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfile(ctx, profile); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return s.Confirm.issueCode(ctx, tx, profile)
	})
	if err != nil {
		return domain.Profile{}, err
	}

	return profile, nil
}
