package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

func TestCrawlLogInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCrawlLogRepository(db, logger.NewNoOp())

	entry := &domain.CrawlLogEntry{
		RunID:           "1f1e9c2a-6c4e-4b9e-8f5a-000000000001",
		JobType:         domain.JobTypeCategoryCrawl,
		SourceKey:       "donga",
		Status:          domain.StatusCompleted,
		ArticlesCount:   7,
		DuplicatesCount: 1,
		ErrorsCount:     2,
		DurationSeconds: 12.5,
	}

	mock.ExpectExec(`INSERT INTO crawling_logs`).
		WithArgs(
			entry.RunID,
			entry.JobType,
			entry.SourceKey,
			entry.Status,
			entry.ArticlesCount,
			entry.DuplicatesCount,
			entry.ErrorsCount,
			entry.DurationSeconds,
			entry.ErrorMessage,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), entry)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrawlLogInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCrawlLogRepository(db, logger.NewNoOp())

	mock.ExpectExec(`INSERT INTO crawling_logs`).WillReturnError(assert.AnError)

	err := repo.Insert(context.Background(), &domain.CrawlLogEntry{
		JobType: domain.JobTypeFullCrawl,
		Status:  domain.StatusFailed,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
