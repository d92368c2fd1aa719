package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/config"
	infradb "todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/platform/password"
	infraredis "todo_backend/internal/platform/redis"
)

func main() {
	// 設定読み込み
	// DATABASE_URLとJWT_SECRETは必須。欠けている場合はここで起動失敗となる
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	gormDB, err := infradb.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := infradb.Migrate(gormDB); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(gormDB)
	todoRepo := di.NewTodoRepository(rdb, gormDB, 5*time.Minute)

	// Platform
	hasher := password.NewBcryptHasher()
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, generator)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	// ルータ生成
	r := router.NewRouter(authH, todoH, verifier)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
