package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/katiepdx/todo-app-be/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "todo:list:"

// TodoCache caches each user's todo list in Redis. Keys are per user, so
// one user's writes never invalidate another user's cache.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for userID, or nil if miss.
func (c *TodoCache) GetList(ctx context.Context, userID int64) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list for userID.
func (c *TodoCache) SetList(ctx context.Context, userID int64, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate drops the cached list for userID (cache invalidation on write).
func (c *TodoCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}

func listKey(userID int64) string {
	return keyListPrefix + strconv.FormatInt(userID, 10)
}
