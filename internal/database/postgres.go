// Package database provides the PostgreSQL pool, schema migrations, and
// the article, journalist, and crawl-log repositories. All writes are
// single-statement and idempotent or atomic, so concurrent workers need
// no coordination above the database.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/ysleecn1234/newspaper-project/internal/config"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

const connectTimeout = 10 * time.Second

// Connect opens the PostgreSQL pool and verifies it with a ping. A
// failure here is fatal to the run; every later database error is
// handled per operation.
func Connect(cfg config.DatabaseConfig, log logger.Interface) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database)
	return db, nil
}
