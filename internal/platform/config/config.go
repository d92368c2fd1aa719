// Package config はサービス起動時の設定を環境変数から読み込みます。
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// defaultTokenTTL はアクセストークンの既定の有効期間です。
const defaultTokenTTL = 30 * time.Minute

// 必須設定が欠けている場合の起動時エラー。
// リクエスト時ではなくプロセス起動時に検出し、即座に終了させます。
var (
	// ErrMissingDatabaseURL はDATABASE_URLが未設定の場合に返されます。
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

	// ErrMissingJWTSecret はJWT_SECRETが未設定の場合に返されます。
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")
)

// Config はサーバープロセス全体の設定を保持します。
type Config struct {
	DatabaseURL   string        // PostgresのDSN（必須）
	JWTSecret     string        // トークン署名シークレット（必須）
	TokenTTL      time.Duration // アクセストークンの有効期間
	Port          string        // HTTPリスンポート（例: "8080"）
	RedisHost     string        // Redisホスト（任意、未設定時はキャッシュ無効）
	RedisPort     string        // Redisポート
	RedisPassword string        // Redisパスワード
	RunMigrations bool          // 起動時にAutoMigrateを実行するか
}

// Load は環境変数から設定を読み込み、必須項目を検証します。
// DATABASE_URLまたはJWT_SECRETが欠けている場合はエラーを返します。
// シークレットに暗黙のデフォルト値は設定しません。
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      defaultTokenTTL,
		Port:          os.Getenv("PORT"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	if v := os.Getenv("JWT_EXPIRATION_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return Config{}, errors.New("JWT_EXPIRATION_MINUTES must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// RedisAddr はRedis接続用の"host:port"アドレスを返します。
// Redisが設定されていない場合は空文字列を返します。
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	port := c.RedisPort
	if port == "" {
		port = "6379"
	}
	return c.RedisHost + ":" + port
}
