package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildnet/board/pkg/boardsdk"
)

// TestLivezEndpoint verifies the liveness check works on a fresh container.
func TestLivezEndpoint(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()

	client := boardsdk.NewClient(env.baseURL)

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}

// TestReadyzEndpoint verifies readiness includes a passing database check.
func TestReadyzEndpoint(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()

	client := boardsdk.NewClient(env.baseURL)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestSeededCategories verifies configured categories exist on startup.
func TestSeededCategories(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()

	client := boardsdk.NewClient(env.baseURL)

	categories, err := client.ListCategories(t.Context())
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	require.Contains(t, names, "general")
	require.Contains(t, names, "announcements")
}
