package board_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildnet/board/pkg/boardsdk"
)

// TestSubscriptionLifecycle covers subscribe, idempotent re-subscribe,
// unsubscribe, and the kept-row semantics over HTTP.
func TestSubscriptionLifecycle(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	client := confirmedAccount(t, env, "oscar")
	category := findCategory(t, client, "general")

	sub, err := client.Subscribe(ctx, category.CategoryID)
	require.NoError(t, err)
	require.True(t, sub.Subscribed)

	// Subscribing again converges on the same row.
	again, err := client.Subscribe(ctx, category.CategoryID)
	require.NoError(t, err)
	require.Equal(t, sub.SubscriptionID, again.SubscriptionID)

	list, err := client.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, client.Unsubscribe(ctx, sub.SubscriptionID))

	// The row survives as a lapsed subscription.
	list, err = client.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].Subscribed)

	// Re-subscribing revives it under the original ID.
	revived, err := client.Subscribe(ctx, category.CategoryID)
	require.NoError(t, err)
	require.Equal(t, sub.SubscriptionID, revived.SubscriptionID)
	require.True(t, revived.Subscribed)
}

// TestUnsubscribeRequiresOwnership verifies a profile cannot touch another
// profile's subscription row.
func TestUnsubscribeRequiresOwnership(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	owner := confirmedAccount(t, env, "pam")
	stranger := confirmedAccount(t, env, "quinn")
	category := findCategory(t, owner, "general")

	sub, err := owner.Subscribe(ctx, category.CategoryID)
	require.NoError(t, err)

	err = stranger.Unsubscribe(ctx, sub.SubscriptionID)
	requireAPIError(t, err, http.StatusForbidden, boardsdk.ErrorCodeForbidden)
}

// TestSubscribeUnknownCategory verifies an unknown category is a 404.
func TestSubscribeUnknownCategory(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	client := confirmedAccount(t, env, "rita")

	_, err := client.Subscribe(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	requireAPIError(t, err, http.StatusNotFound, boardsdk.ErrorCodeNotFound)
}
