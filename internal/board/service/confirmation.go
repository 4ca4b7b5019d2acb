package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/pquerna/otp/hotp"
)

var (
	ErrAlreadyConfirmed = errors.New("email already confirmed")
	ErrInvalidCode      = errors.New("invalid confirmation code")
	ErrNotConfirmed     = errors.New("email not confirmed")
)

// ConfirmationService owns the registration confirmation state machine.
// A profile starts unconfirmed; issuing a code overwrites any prior pending
// code, and submitting the matching code flips the profile to confirmed
// exactly once.
type ConfirmationService struct {
	Store store.Store
}

// IssueCode generates a fresh confirmation code for the profile and enqueues
// the confirmation mail. Any previously issued code stops working.
func (s *ConfirmationService) IssueCode(ctx context.Context, profileID string) error {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.EmailConfirmed {
		return ErrAlreadyConfirmed
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return s.issueCode(ctx, tx, profile)
	})
}

// issueCode derives the next HOTP code for the profile, persists its
// fingerprint and counter, and enqueues the confirmation notification. It
// must run inside the caller's transaction so the code and the mail commit
// together.
func (s *ConfirmationService) issueCode(ctx context.Context, tx store.Tx, profile domain.Profile) error {
	counter := profile.ConfirmCounter + 1

	code, err := hotp.GenerateCode(profile.ConfirmSecret, uint64(counter))
	if err != nil {
		return fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	hash := cryptox.FingerprintToken(code)
	if err := tx.Profiles().SetPendingCode(ctx, profile.ID, hash, counter); err != nil {
		return fmt.Errorf("failed to store confirmation code: %w", err)
	}

	return tx.Outbox().Enqueue(ctx, newNotification(
		domain.TemplateRegistrationConfirmation,
		[]string{profile.Email},
		map[string]string{
			"display_name": profile.DisplayName,
			"code":         code,
		},
	))
}

// SubmitCode confirms the profile's email if code matches the currently
// pending confirmation code. Confirmation happens exactly once: concurrent
// submissions of the same code race on a guarded update and the losers see
// ErrAlreadyConfirmed.
func (s *ConfirmationService) SubmitCode(ctx context.Context, profileID string, code string) error {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.EmailConfirmed {
		return ErrAlreadyConfirmed
	}

	changed, err := s.Store.Profiles().ConfirmEmail(ctx, profileID, cryptox.FingerprintToken(code))
	if err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}
	if changed {
		return nil
	}

	// The guarded update did nothing: either the code was wrong, or another
	// submission confirmed the profile first. Re-read to tell them apart.
	profile, err = s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.EmailConfirmed {
		return ErrAlreadyConfirmed
	}
	return ErrInvalidCode
}

// RequireConfirmed returns the profile if its email is confirmed, and
// ErrNotConfirmed otherwise. Workflow services call this before any
// capability-gated operation.
func (s *ConfirmationService) RequireConfirmed(ctx context.Context, profileID string) (domain.Profile, error) {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if !profile.EmailConfirmed {
		return domain.Profile{}, ErrNotConfirmed
	}
	return profile, nil
}
