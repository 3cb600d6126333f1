package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/cache"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"
)

var (
	ErrBookmarkFieldsRequired = errors.New("title and url are required")
	ErrInvalidURL             = errors.New("url is not valid")
)

// urlPattern is deliberately permissive: scheme optional, any path.
var urlPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

// BookmarkService applies bookmark validation on top of the shared resource core.
type BookmarkService struct {
	res resourceService[dom.Bookmark]
}

// NewBookmarkService creates a BookmarkService. If c is nil, caching is disabled.
func NewBookmarkService(r ResourceRepo[dom.Bookmark], c *cache.ListCache[dom.Bookmark]) *BookmarkService {
	return &BookmarkService{res: newResourceService(r, c)}
}

func (s *BookmarkService) List(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	return s.res.list(ctx, userID)
}

func (s *BookmarkService) Create(ctx context.Context, userID int64, title, url, description string, tags []string) (dom.Bookmark, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" || url == "" {
		return dom.Bookmark{}, ErrBookmarkFieldsRequired
	}
	if !urlPattern.MatchString(url) {
		return dom.Bookmark{}, ErrInvalidURL
	}
	if tags == nil {
		tags = []string{}
	}
	return s.res.create(ctx, userID, dom.Bookmark{
		UserID:      userID,
		Title:       title,
		URL:         url,
		Description: strings.TrimSpace(description),
		Tags:        trimAll(tags),
	})
}

// Update merges only the fields present in the patch.
func (s *BookmarkService) Update(ctx context.Context, userID, id int64, patch dto.UpdateBookmarkRequest) (dom.Bookmark, error) {
	return s.res.update(ctx, userID, id, func(b *dom.Bookmark) error {
		if patch.Title != nil {
			t := strings.TrimSpace(*patch.Title)
			if t == "" {
				return ErrBookmarkFieldsRequired
			}
			b.Title = t
		}
		if patch.URL != nil {
			u := strings.TrimSpace(*patch.URL)
			if u == "" {
				return ErrBookmarkFieldsRequired
			}
			if !urlPattern.MatchString(u) {
				return ErrInvalidURL
			}
			b.URL = u
		}
		if patch.Description != nil {
			b.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Tags != nil {
			b.Tags = trimAll(*patch.Tags)
		}
		return nil
	})
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	return s.res.delete(ctx, userID, id)
}
