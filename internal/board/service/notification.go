package service

import (
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/pkg/idx"
)

// newNotification builds an outbox row ready for Enqueue.
func newNotification(tpl domain.Template, recipients []string, data map[string]string) domain.Notification {
	return domain.Notification{
		ID:         idx.New().String(),
		Template:   tpl,
		Recipients: recipients,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	}
}
