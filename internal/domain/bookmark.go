package domain

import "time"

// Bookmark is a saved external URL owned by exactly one user.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	URL         string
	Description string
	Tags        []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
