package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/guildnet/board/internal/board/store"
)

// Dispatcher polls the outbox for committed notifications and attempts
// delivery. Each row is attempted at most once: the claim is a guarded
// update, so concurrent dispatchers never double-send, and failed sends are
// recorded and logged but never retried and never surfaced to workflows.
type Dispatcher struct {
	Store    store.Store
	Notifier Notifier
	Logger   *slog.Logger
	Interval time.Duration
	Batch    int

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewDispatcher creates a dispatcher. If interval is 0 or negative, defaults
// to 5 seconds; if batch is 0 or negative, defaults to 50 rows per poll.
func NewDispatcher(store store.Store, notifier Notifier, logger *slog.Logger, interval time.Duration, batch int) *Dispatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batch <= 0 {
		batch = 50
	}

	return &Dispatcher{
		Store:    store,
		Notifier: notifier,
		Logger:   logger,
		Interval: interval,
		Batch:    batch,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background delivery loop. Non-blocking; call Stop() to
// gracefully shut the worker down.
func (d *Dispatcher) Start() {
	go d.run()
	d.Logger.Info("notification dispatcher started", "interval", d.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until any in-progress poll has finished.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	<-d.doneCh
	d.Logger.Info("notification dispatcher stopped")
}

func (d *Dispatcher) run() {
	defer close(d.doneCh)

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.DispatchPending(context.Background())
		case <-d.stopCh:
			return
		}
	}
}

// DispatchPending claims and delivers one batch of pending notifications.
// Exported so tests and shutdown can drain the outbox synchronously.
func (d *Dispatcher) DispatchPending(ctx context.Context) {
	pending, err := d.Store.Outbox().ListPending(ctx, d.Batch)
	if err != nil {
		d.Logger.Error("failed to list pending notifications", "error", err)
		return
	}

	for _, n := range pending {
		// Claim the row first. Losing the claim means another dispatcher
		// already owns this notification.
		claimed, err := d.Store.Outbox().MarkAttempted(ctx, n.ID)
		if err != nil {
			d.Logger.Error("failed to claim notification",
				slog.String("id", n.ID), slog.Any("error", err))
			continue
		}
		if !claimed {
			continue
		}

		sendErr := d.Notifier.Send(ctx, n.Template, n.Recipients, n.Data)
		if sendErr != nil {
			d.Logger.Error("notification delivery failed",
				slog.String("id", n.ID),
				slog.String("template", string(n.Template)),
				slog.Any("error", sendErr))
		}

		errMsg := ""
		if sendErr != nil {
			errMsg = sendErr.Error()
		}
		if err := d.Store.Outbox().RecordResult(ctx, n.ID, sendErr == nil, errMsg); err != nil {
			d.Logger.Error("failed to record delivery result",
				slog.String("id", n.ID), slog.Any("error", err))
		}
	}
}
