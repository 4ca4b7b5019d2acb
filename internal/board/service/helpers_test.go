package service

import (
	"context"
	"testing"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/internal/board/store/drivers/sqlite"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/guildnet/board/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestProfile(t *testing.T, st store.Store, username string, confirmed bool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	secret, err := cryptox.GenerateSecret(cryptox.TokenSize128)
	require.NoError(t, err)

	now := time.Now().UTC()
	profile := domain.Profile{
		ID:             idx.New().String(),
		Username:       username,
		DisplayName:    username,
		Email:          username + "@example.test",
		PasswordHash:   "argon2:test",
		EmailConfirmed: confirmed,
		ConfirmSecret:  secret,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.Profiles().CreateProfile(ctx, profile))
	return profile
}

func newTestCategory(t *testing.T, st store.Store, name string) domain.Category {
	t.Helper()

	now := time.Now().UTC()
	category := domain.Category{
		ID:        idx.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Categories().CreateCategory(context.Background(), category))
	return category
}

func newTestPost(t *testing.T, st store.Store, author domain.Profile, category domain.Category) domain.Post {
	t.Helper()

	now := time.Now().UTC()
	post := domain.Post{
		ID:         idx.New().String(),
		AuthorID:   author.ID,
		CategoryID: category.ID,
		Title:      "a post",
		Content:    "some content",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Posts().CreatePost(context.Background(), post))
	return post
}

// pendingNotifications returns every unclaimed outbox row, oldest first.
func pendingNotifications(t *testing.T, st store.Store) []domain.Notification {
	t.Helper()

	pending, err := st.Outbox().ListPending(context.Background(), 100)
	require.NoError(t, err)
	return pending
}

// pendingByTemplate filters the unclaimed outbox rows by template.
func pendingByTemplate(t *testing.T, st store.Store, tpl domain.Template) []domain.Notification {
	t.Helper()

	var out []domain.Notification
	for _, n := range pendingNotifications(t, st) {
		if n.Template == tpl {
			out = append(out, n)
		}
	}
	return out
}
