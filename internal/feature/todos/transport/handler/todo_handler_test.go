package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// mockTodosUsecase is a mock implementation of the TodosUsecase interface.
type mockTodosUsecase struct {
	ListFunc   func(ctx context.Context, userID uint) ([]entity.Todo, error)
	CreateFunc func(ctx context.Context, userID uint, fields usecase.TodoFields) (*entity.Todo, error)
	GetFunc    func(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
	UpdateFunc func(ctx context.Context, userID, todoID uint, fields usecase.TodoFields) (*entity.Todo, error)
	DeleteFunc func(ctx context.Context, userID, todoID uint) error
}

func (m *mockTodosUsecase) List(ctx context.Context, userID uint) ([]entity.Todo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTodosUsecase) Create(ctx context.Context, userID uint, fields usecase.TodoFields) (*entity.Todo, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, fields)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodosUsecase) Get(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, todoID)
	}
	return nil, usecase.ErrTodoNotFound
}

func (m *mockTodosUsecase) Update(ctx context.Context, userID, todoID uint, fields usecase.TodoFields) (*entity.Todo, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, todoID, fields)
	}
	return nil, usecase.ErrTodoNotFound
}

func (m *mockTodosUsecase) Delete(ctx context.Context, userID, todoID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, todoID)
	}
	return usecase.ErrTodoNotFound
}

// setupRouter wires the handler behind a stub auth middleware that injects
// the given user ID, mirroring what jwtmw.AuthRequired does after verification.
func setupRouter(uc TodosUsecase, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTodoHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	})
	r.GET("/todos", h.List)
	r.POST("/todos", h.Create)
	r.GET("/todos/:id", h.Get)
	r.PUT("/todos/:id", h.Update)
	r.DELETE("/todos/:id", h.Delete)
	return r
}

func TestTodoHandler_List(t *testing.T) {
	t.Run("returns the user's todos", func(t *testing.T) {
		uc := &mockTodosUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Todo, error) {
				assert.Equal(t, uint(7), userID)
				return []entity.Todo{
					{ID: 1, Title: "buy milk", UserID: 7},
					{ID: 2, Title: "walk dog", Completed: true, UserID: 7},
				}, nil
			},
		}
		router := setupRouter(uc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/todos", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "buy milk", body[0]["title"])
		assert.Equal(t, false, body[0]["completed"])
		assert.Equal(t, true, body[1]["completed"])
	})

	t.Run("empty list serializes as an array", func(t *testing.T) {
		uc := &mockTodosUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Todo, error) {
				return nil, nil
			},
		}
		router := setupRouter(uc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/todos", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("storage failure returns 500 with a generic message", func(t *testing.T) {
		uc := &mockTodosUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Todo, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		router := setupRouter(uc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/todos", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestTodoHandler_Create(t *testing.T) {
	t.Run("creates a todo for the authenticated user", func(t *testing.T) {
		uc := &mockTodosUsecase{
			CreateFunc: func(ctx context.Context, userID uint, fields usecase.TodoFields) (*entity.Todo, error) {
				assert.Equal(t, uint(7), userID)
				return &entity.Todo{ID: 10, Title: fields.Title, Completed: fields.Completed, UserID: userID}, nil
			},
		}
		router := setupRouter(uc, 7)

		body, _ := json.Marshal(gin.H{"title": "buy milk"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/todos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "buy milk", resp["title"])
		assert.Equal(t, false, resp["completed"])
		assert.Equal(t, float64(7), resp["user_id"])
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		uc := &mockTodosUsecase{}
		router := setupRouter(uc, 7)

		body, _ := json.Marshal(gin.H{"description": "no title"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/todos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTodoHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		getFunc        func(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
		expectedStatus int
	}{
		{
			name: "owned todo returned",
			path: "/todos/1",
			getFunc: func(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
				return &entity.Todo{ID: todoID, Title: "buy milk", UserID: userID}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing or foreign todo is 404",
			path: "/todos/1",
			getFunc: func(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
				return nil, usecase.ErrTodoNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id is 404",
			path:           "/todos/abc",
			getFunc:        nil,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockTodosUsecase{GetFunc: tt.getFunc}
			router := setupRouter(uc, 7)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTodoHandler_Update(t *testing.T) {
	t.Run("full update of an owned todo", func(t *testing.T) {
		uc := &mockTodosUsecase{
			UpdateFunc: func(ctx context.Context, userID, todoID uint, fields usecase.TodoFields) (*entity.Todo, error) {
				assert.Equal(t, uint(1), todoID)
				return &entity.Todo{ID: todoID, Title: fields.Title, Description: fields.Description,
					Completed: fields.Completed, UserID: userID}, nil
			},
		}
		router := setupRouter(uc, 7)

		body, _ := json.Marshal(gin.H{"title": "buy oat milk", "completed": true})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/todos/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "buy oat milk", resp["title"])
		assert.Equal(t, true, resp["completed"])
	})

	t.Run("foreign todo is 404", func(t *testing.T) {
		uc := &mockTodosUsecase{
			UpdateFunc: func(ctx context.Context, userID, todoID uint, fields usecase.TodoFields) (*entity.Todo, error) {
				return nil, usecase.ErrTodoNotFound
			},
		}
		router := setupRouter(uc, 7)

		body, _ := json.Marshal(gin.H{"title": "hijacked"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/todos/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Run("owned todo deleted with no body", func(t *testing.T) {
		uc := &mockTodosUsecase{
			DeleteFunc: func(ctx context.Context, userID, todoID uint) error {
				return nil
			},
		}
		router := setupRouter(uc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/todos/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing or foreign todo is 404", func(t *testing.T) {
		uc := &mockTodosUsecase{}
		router := setupRouter(uc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/todos/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
