package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/cache"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"
)

var ErrNoteFieldsRequired = errors.New("title and content are required")

// NoteService applies note validation on top of the shared resource core.
type NoteService struct {
	res resourceService[dom.Note]
}

// NewNoteService creates a NoteService. If c is nil, caching is disabled.
func NewNoteService(r ResourceRepo[dom.Note], c *cache.ListCache[dom.Note]) *NoteService {
	return &NoteService{res: newResourceService(r, c)}
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]dom.Note, error) {
	return s.res.list(ctx, userID)
}

func (s *NoteService) Create(ctx context.Context, userID int64, title, content string, category []string) (dom.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return dom.Note{}, ErrNoteFieldsRequired
	}
	if category == nil {
		category = []string{}
	}
	return s.res.create(ctx, userID, dom.Note{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Category: trimAll(category),
	})
}

// Update merges only the fields present in the patch. Presence is carried by
// pointers, so an empty string or empty category list is a real value.
func (s *NoteService) Update(ctx context.Context, userID, id int64, patch dto.UpdateNoteRequest) (dom.Note, error) {
	return s.res.update(ctx, userID, id, func(n *dom.Note) error {
		if patch.Title != nil {
			t := strings.TrimSpace(*patch.Title)
			if t == "" {
				return ErrNoteFieldsRequired
			}
			n.Title = t
		}
		if patch.Content != nil {
			if strings.TrimSpace(*patch.Content) == "" {
				return ErrNoteFieldsRequired
			}
			n.Content = *patch.Content
		}
		if patch.Category != nil {
			n.Category = trimAll(*patch.Category)
		}
		return nil
	})
}

func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	return s.res.delete(ctx, userID, id)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
