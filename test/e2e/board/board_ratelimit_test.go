package board_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildnet/board/pkg/boardsdk"
)

// TestLoginRateLimit verifies the strict per-IP limit on credential
// endpoints kicks in under production settings.
func TestLoginRateLimit(t *testing.T) {
	env, cleanup := setupBoardContainerWithDefaultRateLimits(t)
	defer cleanup()
	ctx := t.Context()

	client := boardsdk.NewClient(env.baseURL)

	limited := false
	for range 20 {
		_, err := client.Login(ctx, "nobody", "wrong password")
		require.Error(t, err)

		apiErr, ok := err.(*boardsdk.APIError)
		require.True(t, ok, "expected *boardsdk.APIError, got %T", err)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, "rate_limit_exceeded", apiErr.Code)
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}

	require.True(t, limited, "strict rate limit never triggered")
}

// TestPublicReadsAreNotStrictlyLimited verifies the lenient profile on
// public listing endpoints tolerates bursts that the strict profile blocks.
func TestPublicReadsAreNotStrictlyLimited(t *testing.T) {
	env, cleanup := setupBoardContainerWithDefaultRateLimits(t)
	defer cleanup()
	ctx := t.Context()

	client := boardsdk.NewClient(env.baseURL)

	for range 50 {
		_, err := client.ListCategories(ctx)
		require.NoError(t, err)
	}
}
