// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// CachingTodoRepository decorates a TodoRepository with Redis caching of
// per-user todo lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Any write
// for a user invalidates that user's cached list; single-todo reads are
// never cached because ownership decisions are made against them.
type CachingTodoRepository struct {
	inner     usecase.TodoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingTodoRepository decorates a TodoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "todos".
// A nil Redis client disables caching entirely.
func NewCachingTodoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TodoRepository, namespace string) *CachingTodoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "todos"
	}
	return &CachingTodoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Create(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// FindByID always reads through to the underlying repository.
func (c *CachingTodoRepository) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByUserID retrieves a user's todos, checking cache first then falling
// back to the database.
func (c *CachingTodoRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Todo, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByUserID(ctx, userID)
	}

	key := c.listKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Update(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// Delete removes a todo and invalidates the owner's cached list.
// The owner is looked up before deletion because the ID alone does not
// identify which user's list to invalidate.
func (c *CachingTodoRepository) Delete(ctx context.Context, id uint) error {
	var ownerID uint
	if c.rdb != nil {
		if todo, err := c.inner.FindByID(ctx, id); err == nil {
			ownerID = todo.UserID
		}
	}

	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}

	if ownerID != 0 {
		c.invalidate(ctx, ownerID)
	}
	return nil
}

// invalidate drops a user's cached list. Best effort: a failed delete only
// means a stale read until the TTL expires.
func (c *CachingTodoRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(userID)).Err()
}

// listKey generates the cache key for a user's todo list.
func (c *CachingTodoRepository) listKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
