package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

// JournalistRepository maintains per-reporter cumulative statistics.
type JournalistRepository struct {
	db     *sqlx.DB
	logger logger.Interface
}

// NewJournalistRepository creates a JournalistRepository.
func NewJournalistRepository(db *sqlx.DB, log logger.Interface) *JournalistRepository {
	return &JournalistRepository{db: db, logger: log}
}

// recordArticleQuery is a single atomic upsert: the insert path seeds a
// new journalist row, the conflict path increments the counters and
// appends the history arrays in place. Concurrent workers recording the
// same journalist serialize on the row inside the database, so counts
// never lose updates.
const recordArticleQuery = `
	INSERT INTO journalists
		(name, source, total_articles, first_article_date, last_article_date,
		 categories, article_titles, article_contents, article_urls,
		 article_categories, article_published_dates)
	VALUES
		($1, $2, 1, $3, $3,
		 CASE WHEN $4 = '' THEN '{}'::TEXT[] ELSE ARRAY[$4] END,
		 ARRAY[$5], ARRAY[$6], ARRAY[$7], ARRAY[$4], ARRAY[$8])
	ON CONFLICT (name, source) DO UPDATE SET
		total_articles = journalists.total_articles + 1,
		first_article_date = COALESCE(journalists.first_article_date, EXCLUDED.first_article_date),
		last_article_date = COALESCE(EXCLUDED.last_article_date, journalists.last_article_date),
		categories = CASE
			WHEN $4 <> '' AND NOT ($4 = ANY(journalists.categories))
				THEN array_append(journalists.categories, $4)
			ELSE journalists.categories
		END,
		article_titles = array_append(journalists.article_titles, $5),
		article_contents = array_append(journalists.article_contents, $6),
		article_urls = array_append(journalists.article_urls, $7),
		article_categories = array_append(journalists.article_categories, $4),
		article_published_dates = array_append(journalists.article_published_dates, $8),
		updated_at = NOW()`

// RecordArticle increments the journalist's statistics for one authored
// article. The operation is atomic at the statement level.
func (r *JournalistRepository) RecordArticle(ctx context.Context, name, source string, snapshot domain.ArticleSnapshot) error {
	publishedText := ""
	if snapshot.PublishedDate != nil {
		publishedText = snapshot.PublishedDate.UTC().Format(time.RFC3339)
	}

	err := withRetry(ctx, r.logger, "journalist.record_article", func() error {
		_, err := r.db.ExecContext(ctx, recordArticleQuery,
			name,
			source,
			snapshot.PublishedDate,
			snapshot.Category,
			snapshot.Title,
			snapshot.Content,
			snapshot.URL,
			publishedText,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to record article for journalist %q: %w", name, err)
	}
	return nil
}

// TopByArticles returns journalists ranked by article count, optionally
// filtered by source and by category membership.
func (r *JournalistRepository) TopByArticles(ctx context.Context, source, category string, limit int) ([]domain.JournalistStat, error) {
	if limit <= 0 {
		limit = 20
	}

	type statRow struct {
		ID               int64          `db:"id"`
		Name             string         `db:"name"`
		Source           string         `db:"source"`
		TotalArticles    int            `db:"total_articles"`
		FirstArticleDate *time.Time     `db:"first_article_date"`
		LastArticleDate  *time.Time     `db:"last_article_date"`
		Categories       pq.StringArray `db:"categories"`
	}

	query := `SELECT id, name, source, total_articles, first_article_date,
	                 last_article_date, categories
	          FROM journalists`
	var conds []string
	args := []any{}
	if source != "" {
		args = append(args, source)
		conds = append(conds, fmt.Sprintf("source = $%d", len(args)))
	}
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("$%d = ANY(categories)", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY total_articles DESC, name ASC LIMIT %d`, limit)

	var rows []statRow
	err := withRetry(ctx, r.logger, "journalist.top_by_articles", func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rank journalists: %w", err)
	}

	stats := make([]domain.JournalistStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.JournalistStat{
			ID:               row.ID,
			Name:             row.Name,
			Source:           row.Source,
			TotalArticles:    row.TotalArticles,
			FirstArticleDate: row.FirstArticleDate,
			LastArticleDate:  row.LastArticleDate,
			Categories:       row.Categories,
		})
	}
	return stats, nil
}
