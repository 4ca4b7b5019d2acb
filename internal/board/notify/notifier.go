// Package notify delivers board notifications. Workflow services never call
// a Notifier directly: they enqueue outbox rows and the Dispatcher drives
// delivery in the background, so a broken mail setup can never fail a
// registration, a moderation decision or a subscribe.
package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/guildnet/board/internal/board/domain"
)

// Notifier delivers a single rendered notification to its recipients.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Send(ctx context.Context, tpl domain.Template, recipients []string, data map[string]string) error
}

// NewNoopNotifier returns a Notifier that logs and discards everything.
// Used when no SMTP endpoint is configured.
func NewNoopNotifier(logger *slog.Logger) Notifier {
	return &noopNotifier{logger: logger}
}

type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Send(_ context.Context, tpl domain.Template, recipients []string, _ map[string]string) error {
	n.logger.Debug("notification discarded, no mailer configured",
		slog.String("template", string(tpl)),
		slog.Int("recipients", len(recipients)))
	return nil
}

// NewLogNotifier returns a Notifier that renders mail to the log instead of
// sending it. Only for non-production environments: confirmation codes end
// up in the log output, which is exactly what local development and e2e
// tests want.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Send(_ context.Context, tpl domain.Template, recipients []string, data map[string]string) error {
	subject, body, err := render(tpl, data)
	if err != nil {
		return err
	}

	n.logger.Info("notification rendered to log, no mailer configured",
		slog.String("template", string(tpl)),
		slog.String("to", strings.Join(recipients, ", ")),
		slog.String("subject", subject),
		slog.String("body", body))
	return nil
}
