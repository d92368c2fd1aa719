// Package dto はtodosフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// TodoReq は/todosの作成・更新エンドポイントのリクエストボディを表します。
// 所有者フィールドは受け付けません。所有者は常に検証済みトークンの
// サブジェクトから決定されます。
type TodoReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
