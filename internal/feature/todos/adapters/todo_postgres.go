// Package adapters はtodosフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoPostgres はTodoRepositoryインターフェースのPostgres実装です。
// 所有権の強制はこの層の責務ではなく、usecase層が行います。
type todoPostgres struct {
	db *gorm.DB
}

// todoPostgresがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*todoPostgres)(nil)

// NewTodoPostgres は指定されたgorm.DB接続でtodoPostgresの新しいインスタンスを生成します。
func NewTodoPostgres(db *gorm.DB) *todoPostgres {
	return &todoPostgres{db: db}
}

// Create はTodoをデータベースに追加します。
func (r *todoPostgres) Create(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindByID はIDでTodoを取得します。
// 存在しない場合、usecase.ErrTodoNotFoundを返します。
func (r *todoPostgres) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// FindByUserID は指定されたユーザーが所有するTodoをID順で返します。
// 所有Todoが無い場合は空スライスを返します。
func (r *todoPostgres) FindByUserID(ctx context.Context, userID uint) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Update は既存のTodoの全フィールドを保存します。
func (r *todoPostgres) Update(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete はIDでTodoを削除します。
// 対象行が存在しない場合、usecase.ErrTodoNotFoundを返します。
func (r *todoPostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
