package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

// CrawlLogRepository appends audit rows describing crawl runs.
type CrawlLogRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewCrawlLogRepository creates a CrawlLogRepository.
func NewCrawlLogRepository(db *sqlx.DB, log logger.Interface) *CrawlLogRepository {
	return &CrawlLogRepository{db: db, logger: log}
}

// Insert appends one crawl-log row.
func (r *CrawlLogRepository) Insert(ctx context.Context, entry *domain.CrawlLogEntry) error {
	const query = `
		INSERT INTO crawling_logs
			(run_id, job_type, source_key, status, articles_count,
			 duplicates_count, errors_count, duration_seconds, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	err := withRetry(ctx, r.logger, "crawllog.insert", func() error {
		_, err := r.db.ExecContext(ctx, query,
			entry.RunID,
			entry.JobType,
			entry.SourceKey,
			entry.Status,
			entry.ArticlesCount,
			entry.DuplicatesCount,
			entry.ErrorsCount,
			entry.DurationSeconds,
			entry.ErrorMessage,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert crawl log: %w", err)
	}
	return nil
}
