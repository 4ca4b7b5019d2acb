package domain

import "time"

// ResponseStatus is the moderation state of a response. A response starts
// pending and moves exactly once to approved or deleted; both are terminal.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseApproved ResponseStatus = "approved"
	ResponseDeleted  ResponseStatus = "deleted"
)

// Valid reports whether s is a known status value.
func (s ResponseStatus) Valid() bool {
	switch s {
	case ResponsePending, ResponseApproved, ResponseDeleted:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s ResponseStatus) Terminal() bool {
	return s == ResponseApproved || s == ResponseDeleted
}

// CanTransition reports whether a response may move from s to next.
func (s ResponseStatus) CanTransition(next ResponseStatus) bool {
	return s == ResponsePending && (next == ResponseApproved || next == ResponseDeleted)
}

type Response struct {
	ID        string
	PostID    string // Foreign key to posts table
	AuthorID  string // Foreign key to profiles table
	Content   string
	Status    ResponseStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
