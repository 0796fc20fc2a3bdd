package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations are idempotent DDL statements run at startup, in order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS news_articles (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		url TEXT NOT NULL UNIQUE,
		source TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		published_date TIMESTAMPTZ,
		categories TEXT[] NOT NULL DEFAULT '{}',
		tags TEXT[] NOT NULL DEFAULT '{}',
		metadata JSONB NOT NULL DEFAULT '{}',
		word_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_source ON news_articles (source)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_published_date ON news_articles (published_date)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_author ON news_articles (author)`,

	`CREATE TABLE IF NOT EXISTS journalists (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		total_articles INTEGER NOT NULL DEFAULT 0,
		first_article_date TIMESTAMPTZ,
		last_article_date TIMESTAMPTZ,
		categories TEXT[] NOT NULL DEFAULT '{}',
		article_titles TEXT[] NOT NULL DEFAULT '{}',
		article_contents TEXT[] NOT NULL DEFAULT '{}',
		article_urls TEXT[] NOT NULL DEFAULT '{}',
		article_categories TEXT[] NOT NULL DEFAULT '{}',
		article_published_dates TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (name, source)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journalists_source ON journalists (source)`,

	`CREATE TABLE IF NOT EXISTS crawling_logs (
		id BIGSERIAL PRIMARY KEY,
		run_id TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL,
		source_key TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		articles_count INTEGER NOT NULL DEFAULT 0,
		duplicates_count INTEGER NOT NULL DEFAULT 0,
		errors_count INTEGER NOT NULL DEFAULT 0,
		duration_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_crawling_logs_run_id ON crawling_logs (run_id)`,
}

// Migrate creates the schema. Safe to run on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
