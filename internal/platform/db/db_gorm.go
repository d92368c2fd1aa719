// Package db はGORMによるPostgres接続を提供します。
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	todoentity "todo_backend/internal/feature/todos/domain/entity"
)

// connectTimeout はDB接続リトライの上限時間です。
// コンテナ起動直後はDBの受け入れ準備が整っていないことがあるため、
// 一定時間リトライしてから諦めます。
const connectTimeout = 60 * time.Second

// Open は指定されたDSNでPostgresに接続します。
// 接続に失敗した場合はconnectTimeoutまでリトライします。
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", connectTimeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate はユーザーとTodoのテーブルを作成・更新します。
// RUN_MIGRATIONS=true の場合のみ起動時に呼ばれます。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&todoentity.Todo{},
	)
}
