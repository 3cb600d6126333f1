package domain

import "time"

// Todo is a single task owned by exactly one user.
// Deadline is optional; nil means no deadline.
type Todo struct {
	ID        int64
	UserID    int64
	Text      string
	Completed bool
	Deadline  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
