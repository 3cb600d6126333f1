package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache caches per-user list results in Redis. One instance per resource
// type, distinguished by key prefix ("note", "bookmark", "todo").
type ListCache[T any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewListCache returns a new ListCache.
func NewListCache[T any](rdb *redis.Client, prefix string, ttl time.Duration) *ListCache[T] {
	return &ListCache[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *ListCache[T]) listKey(userID int64) string {
	return c.prefix + ":list:" + strconv.FormatInt(userID, 10)
}

// GetList returns the cached list for the user, or nil on miss.
func (c *ListCache[T]) GetList(ctx context.Context, userID int64) ([]T, error) {
	b, err := c.rdb.Get(ctx, c.listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the user's list in cache.
func (c *ListCache[T]) SetList(ctx context.Context, userID int64, list []T) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.listKey(userID), b, c.ttl).Err()
}

// InvalidateOwner removes the user's cached list (cache invalidation on write).
func (c *ListCache[T]) InvalidateOwner(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, c.listKey(userID)).Err()
}
