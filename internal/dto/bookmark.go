package dto

import "time"

type CreateBookmarkRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	URL         string   `json:"url" binding:"required"`
	Description string   `json:"description" binding:"max=1000"`
	Tags        []string `json:"tags"`
}

// UpdateBookmarkRequest uses pointers so that absent fields are left untouched.
type UpdateBookmarkRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	URL         *string   `json:"url"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	Tags        *[]string `json:"tags"`
}

type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
