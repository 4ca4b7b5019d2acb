package domain

import "time"

// Subscription links a profile to a category. At most one row exists per
// (profile, category) pair; unsubscribing flips Subscribed to false rather
// than deleting the row.
type Subscription struct {
	ID         string
	ProfileID  string
	CategoryID string
	Subscribed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
