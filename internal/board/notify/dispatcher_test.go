package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/internal/board/store/drivers/sqlite"
	"github.com/guildnet/board/pkg/idx"
)

type sentMail struct {
	tpl        domain.Template
	recipients []string
	data       map[string]string
}

// captureNotifier records every Send call and optionally fails them.
type captureNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (c *captureNotifier) Send(_ context.Context, tpl domain.Template, recipients []string, data map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sentMail{tpl: tpl, recipients: recipients, data: data})
	return c.err
}

func (c *captureNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func enqueue(t *testing.T, st store.Store, tpl domain.Template, recipient string) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:         idx.New().String(),
		Template:   tpl,
		Recipients: []string{recipient},
		Data:       map[string]string{"display_name": "Test"},
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, st.Outbox().Enqueue(context.Background(), n))
	return n
}

func newDispatcher(st store.Store, n Notifier) *Dispatcher {
	return NewDispatcher(st, n, slog.New(slog.DiscardHandler), time.Minute, 50)
}

func TestDispatchPendingDeliversEachRowOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &captureNotifier{}
	d := newDispatcher(st, notifier)

	enqueue(t, st, domain.TemplateNewPost, "a@example.test")
	enqueue(t, st, domain.TemplateSubscribed, "b@example.test")

	d.DispatchPending(ctx)
	require.Equal(t, 2, notifier.count())

	// Already-attempted rows must not be re-sent.
	d.DispatchPending(ctx)
	require.Equal(t, 2, notifier.count())

	pending, err := st.Outbox().ListPending(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestDispatchPendingRecordsFailureWithoutRetry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &captureNotifier{err: errors.New("smtp: connection refused")}
	d := newDispatcher(st, notifier)

	enqueue(t, st, domain.TemplateNewResponse, "a@example.test")

	d.DispatchPending(ctx)
	require.Equal(t, 1, notifier.count())

	// The failed row is consumed, not retried.
	d.DispatchPending(ctx)
	require.Equal(t, 1, notifier.count())

	pending, err := st.Outbox().ListPending(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestDispatchPendingSkipsClaimedRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &captureNotifier{}
	d := newDispatcher(st, notifier)

	n := enqueue(t, st, domain.TemplateNewPost, "a@example.test")

	// Another dispatcher already owns the claim.
	claimed, err := st.Outbox().MarkAttempted(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	d.DispatchPending(ctx)
	require.Zero(t, notifier.count())
}
