// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのフォームエンコードされたリクエストを表します。
// OAuth2パスワードフロー互換のため、フィールド名はusernameですが
// 値はメールアドレスです。
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
