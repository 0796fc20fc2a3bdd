package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

// ArticleRepository persists article records. The URL unique constraint
// makes Save idempotent, so re-crawling a page is always safe.
type ArticleRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewArticleRepository creates an ArticleRepository.
func NewArticleRepository(db *sqlx.DB, log logger.Interface) *ArticleRepository {
	return &ArticleRepository{db: db, logger: log}
}

// Save inserts the article and reports whether a row was written. A URL
// already present leaves the existing row untouched and returns
// (false, nil): duplicates are the expected outcome of re-crawls, not
// errors. Transient connection failures are retried.
func (r *ArticleRepository) Save(ctx context.Context, article *domain.ArticleRecord) (bool, error) {
	if err := article.Validate(); err != nil {
		return false, fmt.Errorf("invalid article %q: %w", article.URL, err)
	}
	article.WordCount = article.ComputeWordCount()

	const query = `
		INSERT INTO news_articles
			(title, content, url, source, author, published_date,
			 categories, tags, metadata, word_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (url) DO NOTHING`

	var inserted bool
	err := withRetry(ctx, r.logger, "article.save", func() error {
		res, err := r.db.ExecContext(ctx, query,
			article.Title,
			article.Content,
			article.URL,
			article.Source,
			article.Author,
			article.PublishedDate,
			pq.Array(article.Categories),
			pq.Array(article.Tags),
			article.Metadata,
			article.WordCount,
		)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		inserted = rows > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to save article %q: %w", article.URL, err)
	}
	return inserted, nil
}

// Exists reports whether an article with the URL is already stored.
func (r *ArticleRepository) Exists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := withRetry(ctx, r.logger, "article.exists", func() error {
		return r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM news_articles WHERE url = $1)`, url)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check article %q: %w", url, err)
	}
	return exists, nil
}

// CountBySource returns the stored article count per source.
func (r *ArticleRepository) CountBySource(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Source string `db:"source"`
		Count  int    `db:"count"`
	}{}
	err := withRetry(ctx, r.logger, "article.count_by_source", func() error {
		return r.db.SelectContext(ctx, &rows,
			`SELECT source, COUNT(*) AS count FROM news_articles GROUP BY source ORDER BY count DESC`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Source] = row.Count
	}
	return counts, nil
}

// ListRecent returns the most recently stored articles, newest first.
func (r *ArticleRepository) ListRecent(ctx context.Context, limit int) ([]domain.ArticleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	type articleRow struct {
		ID            int64           `db:"id"`
		Title         string          `db:"title"`
		Content       string          `db:"content"`
		URL           string          `db:"url"`
		Source        string          `db:"source"`
		Author        string          `db:"author"`
		PublishedDate *time.Time      `db:"published_date"`
		Categories    pq.StringArray  `db:"categories"`
		Tags          pq.StringArray  `db:"tags"`
		Metadata      domain.JSONBMap `db:"metadata"`
		WordCount     int             `db:"word_count"`
		CreatedAt     time.Time       `db:"created_at"`
		UpdatedAt     time.Time       `db:"updated_at"`
	}

	var rows []articleRow
	err := withRetry(ctx, r.logger, "article.list_recent", func() error {
		return r.db.SelectContext(ctx, &rows,
			`SELECT id, title, content, url, source, author, published_date,
			        categories, tags, metadata, word_count, created_at, updated_at
			 FROM news_articles ORDER BY created_at DESC LIMIT $1`, limit)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]domain.ArticleRecord, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, domain.ArticleRecord{
			ID:            row.ID,
			Title:         row.Title,
			Content:       row.Content,
			URL:           row.URL,
			Source:        row.Source,
			Author:        row.Author,
			PublishedDate: row.PublishedDate,
			Categories:    row.Categories,
			Tags:          row.Tags,
			Metadata:      row.Metadata,
			WordCount:     row.WordCount,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return articles, nil
}
