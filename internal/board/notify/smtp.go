package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/guildnet/board/internal/board/domain"
)

// SMTPNotifier renders templates to plain-text mail and hands them to an
// SMTP endpoint.
type SMTPNotifier struct {
	Addr string // host:port
	From string
	Auth smtp.Auth // nil for unauthenticated relays
}

func (n *SMTPNotifier) Send(_ context.Context, tpl domain.Template, recipients []string, data map[string]string) error {
	subject, body, err := render(tpl, data)
	if err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(n.Addr, n.Auth, n.From, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
