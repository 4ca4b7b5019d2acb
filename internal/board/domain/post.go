package domain

import "time"

type Post struct {
	ID         string
	AuthorID   string // Foreign key to profiles table; never changes after creation
	CategoryID string // Foreign key to categories table
	Title      string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
