package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/extractor"
	"github.com/ysleecn1234/newspaper-project/internal/fetcher"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

const articleHTML = `<html><head>
	<meta property="og:title" content="정부, 새 경제정책 발표">
</head><body>
	<div class="article_body">
		<p>홍길동 기자 = 서울</p>
		<p>%s</p>
	</div>
</body></html>`

type fakeFrontier struct {
	urls []string
}

func (f *fakeFrontier) Collect(ctx context.Context, categoryURL string) ([]string, error) {
	return f.urls, nil
}

type fakeFetcher struct {
	failing map[string]bool
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) (*fetcher.Page, error) {
	if f.failing[rawURL] {
		return nil, fmt.Errorf("%w: %s", fetcher.ErrFetchFailed, rawURL)
	}
	body := fmt.Sprintf(articleHTML, strings.Repeat("정부가 오늘 새로운 경제정책을 발표했다. ", 10))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &fetcher.Page{URL: rawURL, Body: body, Document: doc, Encoding: "utf-8"}, nil
}

type fakeArticleStore struct {
	mu         sync.Mutex
	duplicates map[string]bool
	saved      []string
}

func (s *fakeArticleStore) Save(ctx context.Context, article *domain.ArticleRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duplicates[article.URL] {
		return false, nil
	}
	s.saved = append(s.saved, article.URL)
	return true, nil
}

type fakeJournalistStore struct {
	mu      sync.Mutex
	records []string
}

func (s *fakeJournalistStore) RecordArticle(ctx context.Context, name, source string, snapshot domain.ArticleSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, name)
	return nil
}

type fakeCrawlLogStore struct {
	mu      sync.Mutex
	entries []*domain.CrawlLogEntry
}

func (s *fakeCrawlLogStore) Insert(ctx context.Context, entry *domain.CrawlLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeCrawlLogStore) byJobType(jobType string) []*domain.CrawlLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.CrawlLogEntry
	for _, e := range s.entries {
		if e.JobType == jobType {
			out = append(out, e)
		}
	}
	return out
}

type fakeEmitter struct {
	mu       sync.Mutex
	articles []*domain.ArticleRecord
}

func (e *fakeEmitter) Write(article *domain.ArticleRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.articles = append(e.articles, article)
	return nil
}

func testRegistry(t *testing.T) *sources.Registry {
	t.Helper()
	registry, err := sources.NewRegistry([]*sources.Profile{{
		Key:             "testpub",
		Name:            "테스트신문",
		Hosts:           []string{"test.example"},
		ArticlePatterns: []string{`/articles/\d+`},
		Categories: []sources.Category{
			{URL: "https://test.example/list", Label: "정치"},
		},
	}})
	require.NoError(t, err)
	return registry
}

func TestRunCountsOutcomes(t *testing.T) {
	urls := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		urls = append(urls, fmt.Sprintf("https://test.example/articles/%d", 100+i))
	}

	fetchers := &fakeFetcher{failing: map[string]bool{
		urls[3]: true,
		urls[8]: true,
	}}
	articles := &fakeArticleStore{duplicates: map[string]bool{urls[5]: true}}
	journalists := &fakeJournalistStore{}
	crawlLogs := &fakeCrawlLogStore{}
	emitter := &fakeEmitter{}
	registry := testRegistry(t)

	p := New(
		Config{Workers: 3},
		registry,
		&fakeFrontier{urls: urls},
		fetchers,
		extractor.New(registry, logger.NewNoOp()),
		nil,
		Stores{Articles: articles, Journalists: journalists, CrawlLogs: crawlLogs},
		emitter,
		logger.NewNoOp(),
	)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Saved)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 2, summary.Errors)
	assert.NotEmpty(t, summary.RunID)

	categoryEntries := crawlLogs.byJobType(domain.JobTypeCategoryCrawl)
	require.Len(t, categoryEntries, 1)
	assert.Equal(t, "testpub", categoryEntries[0].SourceKey)
	assert.Equal(t, domain.StatusCompleted, categoryEntries[0].Status)
	assert.Equal(t, 7, categoryEntries[0].ArticlesCount)
	assert.Equal(t, 1, categoryEntries[0].DuplicatesCount)
	assert.Equal(t, 2, categoryEntries[0].ErrorsCount)

	runEntries := crawlLogs.byJobType(domain.JobTypeFullCrawl)
	require.Len(t, runEntries, 1)
	assert.Equal(t, summary.RunID, runEntries[0].RunID)

	assert.Len(t, emitter.articles, 7)
	assert.Len(t, journalists.records, 7)
	for _, article := range emitter.articles {
		assert.Equal(t, []string{"정치"}, article.Categories)
		assert.Equal(t, "홍길동", article.Author)
		assert.Equal(t, domain.ChannelListing, article.Metadata["channel"])
	}
}

func TestRunWithoutStores(t *testing.T) {
	urls := []string{
		"https://test.example/articles/100",
		"https://test.example/articles/101",
	}
	emitter := &fakeEmitter{}
	registry := testRegistry(t)

	p := New(
		Config{Workers: 2},
		registry,
		&fakeFrontier{urls: urls},
		&fakeFetcher{},
		extractor.New(registry, logger.NewNoOp()),
		nil,
		Stores{},
		emitter,
		logger.NewNoOp(),
	)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Saved)
	assert.Len(t, emitter.articles, 2)
}

func TestRunSourceFilter(t *testing.T) {
	registry := testRegistry(t)
	p := New(
		Config{Workers: 1, SourceKeys: []string{"otherpub"}},
		registry,
		&fakeFrontier{urls: []string{"https://test.example/articles/100"}},
		&fakeFetcher{},
		extractor.New(registry, logger.NewNoOp()),
		nil,
		Stores{},
		&fakeEmitter{},
		logger.NewNoOp(),
	)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Saved)
}
