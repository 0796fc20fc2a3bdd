package domain

import "time"

// Crawl job types written to the crawling log.
const (
	JobTypeCategoryCrawl = "category_crawl"
	JobTypeFullCrawl     = "full_crawl"
)

// Crawl job statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CrawlLogEntry is an append-only audit row describing one crawl run,
// either a single category batch or the whole run. Written once, never
// mutated.
type CrawlLogEntry struct {
	ID              int64     `db:"id"`
	RunID           string    `db:"run_id"`
	JobType         string    `db:"job_type"`
	SourceKey       string    `db:"source_key"`
	Status          string    `db:"status"`
	ArticlesCount   int       `db:"articles_count"`
	DuplicatesCount int       `db:"duplicates_count"`
	ErrorsCount     int       `db:"errors_count"`
	DurationSeconds float64   `db:"duration_seconds"`
	ErrorMessage    string    `db:"error_message"`
	CreatedAt       time.Time `db:"created_at"`
}
