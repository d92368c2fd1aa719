package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	todoadapters "todo_backend/internal/feature/todos/adapters"
	"todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/cache"
)

// NewTodoRepository creates a TodoRepository implementation.
// If Redis is available, the Postgres repository is wrapped with a
// per-user list cache. Otherwise, it returns the plain repository.
func NewTodoRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TodoRepository {
	repo := todoadapters.NewTodoPostgres(db)
	if rdb != nil {
		return cache.NewCachingTodoRepository(rdb, ttl, repo, "todos")
	}
	return repo
}
