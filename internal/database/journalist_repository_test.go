package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

func TestRecordArticleUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJournalistRepository(db, logger.NewNoOp())

	published := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)
	snapshot := domain.ArticleSnapshot{
		Title:         "정부, 새 경제정책 발표",
		Content:       "정부가 오늘 새로운 경제정책을 발표했다.",
		URL:           "https://www.donga.com/news/Economy/2024/05/13/100001/1",
		PublishedDate: &published,
		Category:      "경제",
	}

	mock.ExpectExec(`INSERT INTO journalists`).
		WithArgs(
			"홍길동",
			"동아일보",
			published,
			"경제",
			snapshot.Title,
			snapshot.Content,
			snapshot.URL,
			"2024-05-13T09:30:00Z",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordArticle(context.Background(), "홍길동", "동아일보", snapshot)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordArticleWithoutPublishedDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJournalistRepository(db, logger.NewNoOp())

	snapshot := domain.ArticleSnapshot{
		Title:    "무기명 날짜 없음",
		Content:  "본문 내용",
		URL:      "https://www.mbn.co.kr/news/politics/100001",
		Category: "정치",
	}

	mock.ExpectExec(`INSERT INTO journalists`).
		WithArgs("김철수", "MBN", nil, "정치", snapshot.Title, snapshot.Content, snapshot.URL, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordArticle(context.Background(), "김철수", "MBN", snapshot)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordArticleUpsertStatementShape(t *testing.T) {
	// The statement must be a single atomic upsert so concurrent workers
	// can record the same journalist without losing counts.
	assert.Contains(t, recordArticleQuery, "ON CONFLICT (name, source) DO UPDATE")
	assert.Contains(t, recordArticleQuery, "total_articles = journalists.total_articles + 1")
	assert.Contains(t, recordArticleQuery, "array_append(journalists.article_titles")
	assert.Contains(t, recordArticleQuery, "array_append(journalists.article_contents")
	assert.Contains(t, recordArticleQuery, "array_append(journalists.article_urls")
	assert.NotContains(t, recordArticleQuery, "SELECT")
}

func TestTopByArticles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJournalistRepository(db, logger.NewNoOp())

	rows := sqlmock.NewRows([]string{
		"id", "name", "source", "total_articles",
		"first_article_date", "last_article_date", "categories",
	}).
		AddRow(1, "홍길동", "동아일보", 42, nil, nil, "{경제,정치}").
		AddRow(2, "김철수", "동아일보", 17, nil, nil, "{사회}")

	mock.ExpectQuery(`SELECT id, name, source, total_articles`).
		WithArgs("동아일보").
		WillReturnRows(rows)

	stats, err := repo.TopByArticles(context.Background(), "동아일보", "", 10)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "홍길동", stats[0].Name)
	assert.Equal(t, 42, stats[0].TotalArticles)
	assert.Equal(t, []string{"경제", "정치"}, stats[0].Categories)
}

func TestTopByArticlesCategoryFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJournalistRepository(db, logger.NewNoOp())

	rows := sqlmock.NewRows([]string{
		"id", "name", "source", "total_articles",
		"first_article_date", "last_article_date", "categories",
	}).
		AddRow(1, "홍길동", "동아일보", 42, nil, nil, "{경제,정치}")

	mock.ExpectQuery(`WHERE source = \$1 AND \$2 = ANY\(categories\)`).
		WithArgs("동아일보", "경제").
		WillReturnRows(rows)

	stats, err := repo.TopByArticles(context.Background(), "동아일보", "경제", 10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "홍길동", stats[0].Name)
}

func TestTopByArticlesCategoryOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJournalistRepository(db, logger.NewNoOp())

	rows := sqlmock.NewRows([]string{
		"id", "name", "source", "total_articles",
		"first_article_date", "last_article_date", "categories",
	}).
		AddRow(2, "김철수", "MBN", 17, nil, nil, "{사회}")

	mock.ExpectQuery(`WHERE \$1 = ANY\(categories\)`).
		WithArgs("사회").
		WillReturnRows(rows)

	stats, err := repo.TopByArticles(context.Background(), "", "사회", 10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, []string{"사회"}, stats[0].Categories)
}
