// Package api はハンドラー間で共有されるHTTPレスポンス型を定義します。
package api

// ErrorResponse は全エンドポイント共通のエラーレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse は/loginエンドポイントの成功レスポンスボディです。
// token_typeは常に"bearer"を返します（OAuth2パスワードフロー互換）。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse は/signupエンドポイントが返すユーザーサマリーです。
// パスワードハッシュは決して含めません。
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// TodoResponse はTodoエンティティのJSON表現です。
type TodoResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	UserID      uint   `json:"user_id"`
}
