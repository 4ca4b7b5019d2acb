package domain

import "time"

// Template identifies a notification template kind.
type Template string

const (
	TemplateRegistrationConfirmation Template = "registration-confirmation"
	TemplateNewResponse              Template = "new-response"
	TemplateResponseApproved         Template = "response-approved"
	TemplateNewPost                  Template = "new-post"
	TemplateSubscribed               Template = "subscribed"
	TemplateUnsubscribed             Template = "unsubscribed"
)

// Notification is an outbox row. Workflow services enqueue rows inside the
// transaction that commits the triggering state change; the dispatcher picks
// up committed rows and attempts delivery exactly once.
type Notification struct {
	ID          string
	Template    Template
	Recipients  []string          // email addresses
	Data        map[string]string // template context
	CreatedAt   time.Time
	AttemptedAt *time.Time // nil until the dispatcher claims the row
	Delivered   bool
	Error       string // last delivery error, empty on success
}
