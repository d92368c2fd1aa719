package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/platform/http/middleware"
)

// ContextUserID は認証済みユーザーIDを保持するginコンテキストのキーです。
const ContextUserID = "userID"

// AuthRequired はJWTトークンを検証し、認証済みユーザーのみに
// アクセスを制限するGinミドルウェアを返します。
// 失敗種別（構造不正・署名不正・期限切れ）はログ上では区別されますが、
// クライアントへのレスポンスはすべて401に収束します。
func AuthRequired(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. 署名と有効期限を検証し、クレームを取り出す
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			middleware.Logger(c).Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. 後続ハンドラーが参照するユーザーIDをコンテキストに格納
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
