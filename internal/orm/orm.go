// Package orm maps the legacy ORM user schema. It runs on its own
// PostgreSQL connection and is not shared with the bot's SQLite store.
package orm

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB bundles the gorm handle with the pgx pool it runs on.
type DB struct {
	Gorm *gorm.DB
	pool *pgxpool.Pool
}

// Open connects to databaseURL and creates the users table if it is missing.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("empty DATABASE_URL")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error pgxpool.New: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error ping postgres: %w", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(pool),
	}), gormConfig())
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("error gorm.Open: %w", err)
	}

	db := &DB{Gorm: gdb, pool: pool}
	if err := NewStore(gdb).Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Close() {
	if sqlDB, err := db.Gorm.DB(); err == nil {
		_ = sqlDB.Close()
	}
	db.pool.Close()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}
