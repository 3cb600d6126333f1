package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Deadline parses the deadline from JSON as either date-only ("2006-01-02")
// or RFC3339. Date-only is stored as start of that day in UTC.
type Deadline struct{ t *time.Time }

func (d *Deadline) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only means start of that day in UTC
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("deadline: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d Deadline) Ptr() *time.Time { return d.t }

type CreateTodoRequest struct {
	Text     string   `json:"text" binding:"required,min=1,max=500"`
	Deadline Deadline `json:"deadline"` // optional: "2026-02-19" or RFC3339
}

// UpdateTodoRequest uses pointers so that absent fields are left untouched.
// Completed is a pointer on purpose: {"completed": false} must persist false.
type UpdateTodoRequest struct {
	Text      *string   `json:"text" binding:"omitempty,min=1,max=500"`
	Completed *bool     `json:"completed"`
	Deadline  *Deadline `json:"deadline"`
}

type TodoResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Deadline  *time.Time `json:"deadline"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
