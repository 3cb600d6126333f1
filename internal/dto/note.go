package dto

import "time"

type CreateNoteRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=200"`
	Content  string   `json:"content" binding:"required,min=1"`
	Category []string `json:"category"`
}

// UpdateNoteRequest uses pointers so that absent fields are left untouched.
// A present-but-empty category clears the list.
type UpdateNoteRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Content  *string   `json:"content" binding:"omitempty,min=1"`
	Category *[]string `json:"category"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  []string  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
