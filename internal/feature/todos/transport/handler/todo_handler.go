// Package handler はtodosフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/http/middleware"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TodosUsecase はTodo操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TodosUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Todo, error)
	Create(ctx context.Context, userID uint, fields usecase.TodoFields) (*entity.Todo, error)
	Get(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
	Update(ctx context.Context, userID, todoID uint, fields usecase.TodoFields) (*entity.Todo, error)
	Delete(ctx context.Context, userID, todoID uint) error
}

// TodoHandler はTodoリソースのHTTPリクエストを処理します。
// すべてのエンドポイントはJWTミドルウェアの背後に配置され、
// 認証済みユーザーIDをginコンテキストから取得します。
type TodoHandler struct {
	todos TodosUsecase
}

// NewTodoHandler はTodoHandlerの新しいインスタンスを生成します。
func NewTodoHandler(todos TodosUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List はGET /todosを処理し、認証済みユーザーが所有するTodoの一覧を返します。
func (h *TodoHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	todos, err := h.todos.List(c.Request.Context(), userID)
	if err != nil {
		middleware.Logger(c).Error("todo list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, toResponse(&todo))
	}
	c.JSON(http.StatusOK, out)
}

// Create はPOST /todosを処理します。
// 所有者はトークンのサブジェクトから決定され、ボディでは指定できません。
func (h *TodoHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.TodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Logger(c).Warn("todo validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), userID, usecase.TodoFields{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		middleware.Logger(c).Error("todo create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toResponse(todo))
}

// Get はGET /todos/:idを処理します。
// 存在しないTodoと他ユーザーのTodoはどちらも404になります。
func (h *TodoHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.todos.Get(c.Request.Context(), userID, todoID)
	if err != nil {
		h.renderError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, toResponse(todo))
}

// Update はPUT /todos/:idを処理します。
func (h *TodoHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req dto.TodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Logger(c).Warn("todo validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), userID, todoID, usecase.TodoFields{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.renderError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, toResponse(todo))
}

// Delete はDELETE /todos/:idを処理し、成功時は204を返します。
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	todoID, ok := parseTodoID(c)
	if !ok {
		return
	}

	if err := h.todos.Delete(c.Request.Context(), userID, todoID); err != nil {
		h.renderError(c, err, userID)
		return
	}

	c.Status(http.StatusNoContent)
}

// renderError はusecaseのエラーをHTTPステータスへ変換します。
// 非所有と不存在は同一の404として返し、リソースの存在を非所有者に
// 確認させません。その他のエラーは詳細を隠して500を返します。
func (h *TodoHandler) renderError(c *gin.Context, err error, userID uint) {
	if errors.Is(err, usecase.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "todo not found"})
		return
	}
	middleware.Logger(c).Error("todo operation failed", "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}

// parseTodoID はパスパラメータのIDを解析します。
// 数値でないIDは存在し得ないため、404として扱います。
func parseTodoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "todo not found"})
		return 0, false
	}
	return uint(id), true
}

// toResponse はTodoエンティティをJSON表現へ変換します。
func toResponse(todo *entity.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		UserID:      todo.UserID,
	}
}
