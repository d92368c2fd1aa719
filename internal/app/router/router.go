package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	platformhandler "todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/http/middleware"
	jwtmw "todo_backend/internal/platform/jwt"
)

// NewRouter はサービスの全ルートを構成したginエンジンを返します。
// トークン検証は構築時に注入されたVerifierで行われます。
func NewRouter(auth *authhandler.AuthHandler, todos *todohandler.TodoHandler,
	verifier *jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	// ブラウザーフロントエンドを同居させるため全オリジンを許可
	// BearerトークンをプリフライトでブロックしないようAuthorizationを追加
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 静的フロントエンド
	r.StaticFile("/", "./web/index.html")

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := r.Group("/todos")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.GET("", todos.List)
		protected.POST("", todos.Create)
		protected.GET("/:id", todos.Get)
		protected.PUT("/:id", todos.Update)
		protected.DELETE("/:id", todos.Delete)
	}

	return r
}
