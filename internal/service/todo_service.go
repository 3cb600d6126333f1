package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/cache"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"
)

var ErrTodoTextRequired = errors.New("todo text is required")

// TodoService applies todo validation on top of the shared resource core.
type TodoService struct {
	res resourceService[dom.Todo]
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r ResourceRepo[dom.Todo], c *cache.ListCache[dom.Todo]) *TodoService {
	return &TodoService{res: newResourceService(r, c)}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	return s.res.list(ctx, userID)
}

func (s *TodoService) Create(ctx context.Context, userID int64, text string, deadline *time.Time) (dom.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return dom.Todo{}, ErrTodoTextRequired
	}
	return s.res.create(ctx, userID, dom.Todo{
		UserID:   userID,
		Text:     text,
		Deadline: deadline,
	})
}

// Update merges only the fields present in the patch. Completed is a pointer
// end to end so that an explicit false is applied, never dropped.
func (s *TodoService) Update(ctx context.Context, userID, id int64, patch dto.UpdateTodoRequest) (dom.Todo, error) {
	return s.res.update(ctx, userID, id, func(t *dom.Todo) error {
		if patch.Text != nil {
			txt := strings.TrimSpace(*patch.Text)
			if txt == "" {
				return ErrTodoTextRequired
			}
			t.Text = txt
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if patch.Deadline != nil {
			t.Deadline = patch.Deadline.Ptr()
		}
		return nil
	})
}

func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return s.res.delete(ctx, userID, id)
}
