package board_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guildnet/board/pkg/boardsdk"
)

/*
 * Common constants and helper functions for board service end-to-end tests.
 * This includes container setup, account helpers, and log scraping for
 * confirmation codes.
 */

const (
	testImageName = "guildnet-board-test:latest"

	testTokenSecret = "e2e-token-secret-0123456789abcdef"
	testPassword    = "Sup3r Secret Pass"
	testCategories  = "general,announcements"
)

// TestMain builds the Docker image once before all tests and removes it
// after the run.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Board Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Board Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/board/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// boardEnv is one running service container. The container handle stays
// accessible so tests can scrape confirmation codes from the logs.
type boardEnv struct {
	baseURL   string
	container testcontainers.Container
}

// setupBoardContainer starts the board service with relaxed rate limits.
// Most tests use this; rate limit behavior has its own setup below.
func setupBoardContainer(t *testing.T) (*boardEnv, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupBoardContainerWithDefaultRateLimits starts the service with the
// production limits, for testing that rate limiting actually works.
func setupBoardContainerWithDefaultRateLimits(t *testing.T) (*boardEnv, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (*boardEnv, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"BOARD_TOKEN_SECRET":  testTokenSecret,
		"BOARD_DATABASE_FILE": "/tmp/board.db",
		"BOARD_CATEGORIES":    testCategories,
		// Fast outbox polling so confirmation codes reach the logs quickly.
		"BOARD_DISPATCH_INTERVAL": "250ms",
		"ENV":                     "test",
		"LOG_LEVEL":               "info",
		"LOG_FORMAT":              "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	e := &boardEnv{
		baseURL:   fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
		container: container,
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return e, cleanup
}

var confirmationCodeRE = regexp.MustCompile(`confirmation code is (\d{6})`)

// confirmationCode scrapes the container logs for the most recent
// confirmation code mailed to the given address. Without an SMTP endpoint
// the service renders mail into its log, which is what the e2e environment
// relies on. Retries until the dispatcher has delivered.
func confirmationCode(t *testing.T, e *boardEnv, email string) string {
	t.Helper()
	ctx := context.Background()

	deadline := time.Now().Add(10 * time.Second)
	for {
		reader, err := e.container.Logs(ctx)
		require.NoError(t, err)

		raw, err := io.ReadAll(reader)
		reader.Close()
		require.NoError(t, err)

		code := ""
		for _, line := range strings.Split(string(raw), "\n") {
			if !strings.Contains(line, email) {
				continue
			}
			if m := confirmationCodeRE.FindStringSubmatch(line); m != nil {
				code = m[1] // keep the last one: resends invalidate earlier codes
			}
		}
		if code != "" {
			return code
		}

		if time.Now().After(deadline) {
			t.Fatalf("no confirmation code for %s found in container logs", email)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

// registerAccount registers a fresh profile and returns a logged-in client.
// The account is NOT confirmed yet.
func registerAccount(t *testing.T, e *boardEnv, username string) *boardsdk.Client {
	t.Helper()
	ctx := context.Background()

	client := boardsdk.NewClient(e.baseURL)
	_, err := client.Register(ctx, boardsdk.RegisterRequest{
		Username:    username,
		DisplayName: strings.ToUpper(username[:1]) + username[1:],
		Email:       username + "@example.test",
		Password:    testPassword,
	})
	require.NoError(t, err)

	login, err := client.Login(ctx, username, testPassword)
	require.NoError(t, err)

	return client.WithToken(login.SessionToken)
}

// confirmedAccount registers, confirms via the logged code, and returns a
// client ready for the gated operations.
func confirmedAccount(t *testing.T, e *boardEnv, username string) *boardsdk.Client {
	t.Helper()
	ctx := context.Background()

	client := registerAccount(t, e, username)
	code := confirmationCode(t, e, username+"@example.test")
	require.NoError(t, client.Confirm(ctx, code))
	return client
}

// findCategory returns the seeded category with the given name.
func findCategory(t *testing.T, client *boardsdk.Client, name string) boardsdk.CategoryResponse {
	t.Helper()

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)

	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return boardsdk.CategoryResponse{}
}

// requireAPIError asserts err is the service's error shape with the given
// status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*boardsdk.APIError)
	require.True(t, ok, "expected *boardsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
