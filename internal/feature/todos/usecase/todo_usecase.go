// Package usecase はtodosフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoRepository はTodoエンティティの永続化層を抽象化します。
// この層は所有権を一切強制しません。所有権の判定は呼び出し側
// （usecase）がフェッチ済みエンティティに対して行います。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TodoRepository interface {
	// Create は新しいTodoをストレージに永続化します。
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID は指定されたIDのTodoを取得します。
	// 存在しない場合、ErrTodoNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Todo, error)

	// FindByUserID は指定されたユーザーが所有するすべてのTodoを取得します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.Todo, error)

	// Update は既存のTodoを保存します。
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete は指定されたIDのTodoを削除します。
	// 存在しない場合、ErrTodoNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// TodoFields はTodoの作成・更新で指定可能なフィールド群です。
// 所有者はここに含まれません。所有者は常に認証済みユーザーです。
type TodoFields struct {
	Title       string
	Description string
	Completed   bool
}

// todoUsecase はTodoの所有権スコープ付きビジネスロジックを実装します。
type todoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase はtodoUsecaseの新しいインスタンスを生成します。
func NewTodoUsecase(todos TodoRepository) *todoUsecase {
	return &todoUsecase{todos: todos}
}

// List は認証済みユーザーが所有するTodoの一覧を返します。
func (u *todoUsecase) List(ctx context.Context, userID uint) ([]entity.Todo, error) {
	return u.todos.FindByUserID(ctx, userID)
}

// Create は認証済みユーザーを所有者として新しいTodoを作成します。
// 所有者はリクエストボディからではなく、検証済みトークンの
// サブジェクトから決定されます。
func (u *todoUsecase) Create(ctx context.Context, userID uint, fields TodoFields) (*entity.Todo, error) {
	todo := &entity.Todo{
		Title:       fields.Title,
		Description: fields.Description,
		Completed:   fields.Completed,
		UserID:      userID,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Get は指定されたTodoを取得します。
// フェッチしてから保存済みの所有者に対して認可する2段階の手順は必須です。
// 所有者が異なる場合は存在しない場合と同じErrTodoNotFoundを返します。
func (u *todoUsecase) Get(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if !AuthorizeOwner(userID, todo.UserID) {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// Update は指定されたTodoのフィールドを更新します。
// 取得・認可の手順はGetと同一で、非所有者にはErrTodoNotFoundを返します。
func (u *todoUsecase) Update(ctx context.Context, userID, todoID uint, fields TodoFields) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if !AuthorizeOwner(userID, todo.UserID) {
		return nil, ErrTodoNotFound
	}

	todo.Title = fields.Title
	todo.Description = fields.Description
	todo.Completed = fields.Completed

	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete は指定されたTodoを削除します。
// 取得・認可の手順はGetと同一で、非所有者にはErrTodoNotFoundを返します。
func (u *todoUsecase) Delete(ctx context.Context, userID, todoID uint) error {
	todo, err := u.todos.FindByID(ctx, todoID)
	if err != nil {
		return err
	}
	if !AuthorizeOwner(userID, todo.UserID) {
		return ErrTodoNotFound
	}
	return u.todos.Delete(ctx, todo.ID)
}
