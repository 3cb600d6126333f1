package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/cache"
)

var ErrNotFound = errors.New("not found")

// ResourceRepo is the owner-scoped persistence contract shared by notes,
// bookmarks and todos. Wrong-owner rows must behave like missing rows:
// GetByID/Update return pgx.ErrNoRows and Delete reports zero rows.
type ResourceRepo[T any] interface {
	ListByOwner(ctx context.Context, userID int64) ([]T, error)
	GetByID(ctx context.Context, userID, id int64) (T, error)
	Insert(ctx context.Context, t T) (T, error)
	Update(ctx context.Context, userID, id int64, t T) (T, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

// resourceService implements owner-scoped CRUD once. Entity services embed it
// and add validation plus patch application. If c is nil, caching is disabled.
type resourceService[T any] struct {
	repo  ResourceRepo[T]
	cache *cache.ListCache[T]
	sf    singleflight.Group
}

func newResourceService[T any](r ResourceRepo[T], c *cache.ListCache[T]) resourceService[T] {
	return resourceService[T]{repo: r, cache: c}
}

func (s *resourceService[T]) list(ctx context.Context, userID int64) ([]T, error) {
	if s.cache == nil {
		return s.repo.ListByOwner(ctx, userID)
	}
	key := "list:" + strconv.FormatInt(userID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.ListByOwner(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (s *resourceService[T]) create(ctx context.Context, userID int64, draft T) (T, error) {
	t, err := s.repo.Insert(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	s.invalidate(ctx, userID)
	return t, nil
}

// update reads the entity owner-scoped, applies the patch closure and writes
// the merged entity back. Last write wins; there is no version check.
func (s *resourceService[T]) update(ctx context.Context, userID, id int64, apply func(*T) error) (T, error) {
	var zero T
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	if err := apply(&existing); err != nil {
		return zero, err
	}
	t, err := s.repo.Update(ctx, userID, id, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	s.invalidate(ctx, userID)
	return t, nil
}

func (s *resourceService[T]) delete(ctx context.Context, userID, id int64) error {
	n, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *resourceService[T]) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateOwner(ctx, userID)
	}
}
