package service

import (
	"context"
	"testing"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/guildnet/board/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTokenService(st store.Store) *TokenService {
	return &TokenService{
		Store:  st,
		Secret: []byte("test-secret-test-secret-test-secret"),
		Issuer: "board-test",
		TTL:    time.Minute,
	}
}

func createLoginProfile(t *testing.T, st store.Store, username, password string) domain.Profile {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	secret, err := cryptox.GenerateSecret(cryptox.TokenSize128)
	require.NoError(t, err)

	now := time.Now().UTC()
	profile := domain.Profile{
		ID:             idx.New().String(),
		Username:       username,
		DisplayName:    username,
		Email:          username + "@example.test",
		PasswordHash:   hash,
		EmailConfirmed: true,
		ConfirmSecret:  secret,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), profile))
	return profile
}

func TestLoginRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTokenService(st)

	profile := createLoginProfile(t, st, "dana", "correct horse battery")

	token, got, err := svc.Login(ctx, "dana", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, profile.ID, got.ID)

	profileID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, profile.ID, profileID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTokenService(st)

	createLoginProfile(t, st, "dana", "correct horse battery")

	_, _, err := svc.Login(ctx, "dana", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "correct horse battery")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	svc := newTokenService(st)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with a different secret fails too.
	other := newTokenService(st)
	other.Secret = []byte("a-completely-different-secret-value")
	token, err := other.Issue("some-profile")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredTokens(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	svc := newTokenService(st)
	svc.TTL = -time.Minute

	token, err := svc.Issue("some-profile")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTokenService(st)

	profile := createLoginProfile(t, st, "dana", "old password okay")

	require.ErrorIs(t,
		svc.ChangePassword(ctx, profile.ID, "guessed wrong", "new password okay"),
		ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, profile.ID, "old password okay", "new password okay"))

	_, _, err := svc.Login(ctx, "dana", "old password okay")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "dana", "new password okay")
	require.NoError(t, err)
}
