// Package pipeline orchestrates a crawl run: frontier discovery per
// category, a bounded worker pool fetching and extracting articles, and
// persistence with crawl-log accounting. Failures stay local: a bad
// URL, a bad page, or a failed category never aborts the run.
package pipeline

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/feed"
	"github.com/ysleecn1234/newspaper-project/internal/fetcher"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Fetcher retrieves pages.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetcher.Page, error)
}

// Collector walks a category's listing pages and returns article URLs.
type Collector interface {
	Collect(ctx context.Context, categoryURL string) ([]string, error)
}

// Extractor turns a parsed page into an article record.
type Extractor interface {
	Extract(doc *goquery.Document, pageURL string) (*domain.ArticleRecord, error)
}

// FeedReader discovers articles through a publisher's RSS endpoints.
type FeedReader interface {
	DiscoverArticles(ctx context.Context, profile *sources.Profile) []feed.Item
}

// ArticleStore persists article records.
type ArticleStore interface {
	Save(ctx context.Context, article *domain.ArticleRecord) (bool, error)
}

// JournalistStore records per-reporter statistics.
type JournalistStore interface {
	RecordArticle(ctx context.Context, name, source string, snapshot domain.ArticleSnapshot) error
}

// CrawlLogStore appends crawl audit rows.
type CrawlLogStore interface {
	Insert(ctx context.Context, entry *domain.CrawlLogEntry) error
}

// Emitter streams extracted articles.
type Emitter interface {
	Write(article *domain.ArticleRecord) error
}

// Config bounds a pipeline run.
type Config struct {
	// Workers is the article-fetch concurrency. Values below 1 are
	// treated as 1.
	Workers int
	// Delay is the politeness pause each worker takes between article
	// fetches.
	Delay time.Duration
	// SourceKeys restricts the run to the named publishers. Empty means
	// all configured publishers.
	SourceKeys []string
	// CategoryURLs restricts the run to the given listing URLs. Empty
	// means every category of the selected publishers.
	CategoryURLs []string
}

// Stores bundles the persistence dependencies. Nil stores are skipped,
// which backs the no-database mode.
type Stores struct {
	Articles    ArticleStore
	Journalists JournalistStore
	CrawlLogs   CrawlLogStore
}

// Pipeline runs the full crawl.
type Pipeline struct {
	cfg       Config
	registry  *sources.Registry
	frontier  Collector
	client    Fetcher
	extractor Extractor
	feeds     FeedReader
	stores    Stores
	emitter   Emitter
	logger    logger.Interface
}

// New creates a Pipeline.
func New(
	cfg Config,
	registry *sources.Registry,
	frontier Collector,
	client Fetcher,
	extractor Extractor,
	feeds FeedReader,
	stores Stores,
	emitter Emitter,
	log logger.Interface,
) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Pipeline{
		cfg:       cfg,
		registry:  registry,
		frontier:  frontier,
		client:    client,
		extractor: extractor,
		feeds:     feeds,
		stores:    stores,
		emitter:   emitter,
		logger:    log,
	}
}

// task is one article URL queued for processing.
type task struct {
	url      string
	category string
	channel  string
}

// counters aggregates worker outcomes for one batch.
type counters struct {
	saved      atomic.Int64
	duplicates atomic.Int64
	errors     atomic.Int64
}

// Summary reports the outcome of a run.
type Summary struct {
	RunID      string
	Saved      int
	Duplicates int
	Errors     int
	Duration   time.Duration
}

// Run crawls every selected category of every selected publisher and
// returns the run summary. Only context cancellation stops the run
// early; per-category and per-article failures are counted and logged.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	started := time.Now()
	var total counters
	runFailed := false

	p.logger.Info("crawl run starting",
		"run_id", runID,
		"workers", p.cfg.Workers)

	for _, profile := range p.registry.All() {
		if !p.sourceSelected(profile.Key) {
			continue
		}

		for _, category := range profile.Categories {
			if !p.categorySelected(category.URL) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if err := p.runCategory(ctx, runID, profile, category, &total); err != nil {
				runFailed = true
				p.logger.Error("category crawl failed",
					"source", profile.Key,
					"category", category.Label,
					"error", err)
			}
		}

		if p.feeds != nil && len(profile.Feeds) > 0 && p.feedsSelected() {
			p.runFeeds(ctx, runID, profile, &total)
		}
	}

	duration := time.Since(started)
	summary := &Summary{
		RunID:      runID,
		Saved:      int(total.saved.Load()),
		Duplicates: int(total.duplicates.Load()),
		Errors:     int(total.errors.Load()),
		Duration:   duration,
	}

	status := domain.StatusCompleted
	if runFailed {
		status = domain.StatusFailed
	}
	p.insertLog(ctx, &domain.CrawlLogEntry{
		RunID:           runID,
		JobType:         domain.JobTypeFullCrawl,
		Status:          status,
		ArticlesCount:   summary.Saved,
		DuplicatesCount: summary.Duplicates,
		ErrorsCount:     summary.Errors,
		DurationSeconds: duration.Seconds(),
	})

	p.logger.Info("crawl run finished",
		"run_id", runID,
		"saved", summary.Saved,
		"duplicates", summary.Duplicates,
		"errors", summary.Errors,
		"duration", duration.Round(time.Millisecond))
	return summary, nil
}

// runCategory discovers and processes one category's articles, writing
// its crawl-log entry.
func (p *Pipeline) runCategory(ctx context.Context, runID string, profile *sources.Profile, category sources.Category, total *counters) error {
	started := time.Now()
	p.logger.Info("category crawl starting",
		"source", profile.Key,
		"category", category.Label,
		"url", category.URL)

	urls, err := p.frontier.Collect(ctx, category.URL)
	if err != nil {
		p.insertLog(ctx, &domain.CrawlLogEntry{
			RunID:           runID,
			JobType:         domain.JobTypeCategoryCrawl,
			SourceKey:       profile.Key,
			Status:          domain.StatusFailed,
			DurationSeconds: time.Since(started).Seconds(),
			ErrorMessage:    err.Error(),
		})
		return err
	}

	tasks := make([]task, 0, len(urls))
	for _, u := range urls {
		tasks = append(tasks, task{url: u, category: category.Label, channel: domain.ChannelListing})
	}

	batch := p.processTasks(ctx, tasks)
	total.saved.Add(batch.saved.Load())
	total.duplicates.Add(batch.duplicates.Load())
	total.errors.Add(batch.errors.Load())

	duration := time.Since(started)
	p.insertLog(ctx, &domain.CrawlLogEntry{
		RunID:           runID,
		JobType:         domain.JobTypeCategoryCrawl,
		SourceKey:       profile.Key,
		Status:          domain.StatusCompleted,
		ArticlesCount:   int(batch.saved.Load()),
		DuplicatesCount: int(batch.duplicates.Load()),
		ErrorsCount:     int(batch.errors.Load()),
		DurationSeconds: duration.Seconds(),
	})
	p.logger.Info("category crawl finished",
		"source", profile.Key,
		"category", category.Label,
		"discovered", len(urls),
		"saved", batch.saved.Load(),
		"duplicates", batch.duplicates.Load(),
		"errors", batch.errors.Load(),
		"duration", duration.Round(time.Millisecond))
	return nil
}

// runFeeds processes the publisher's RSS channel as one extra batch.
func (p *Pipeline) runFeeds(ctx context.Context, runID string, profile *sources.Profile, total *counters) {
	started := time.Now()
	items := p.feeds.DiscoverArticles(ctx, profile)
	if len(items) == 0 {
		return
	}

	tasks := make([]task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, task{url: item.URL, category: item.Category, channel: domain.ChannelRSS})
	}

	batch := p.processTasks(ctx, tasks)
	total.saved.Add(batch.saved.Load())
	total.duplicates.Add(batch.duplicates.Load())
	total.errors.Add(batch.errors.Load())

	p.insertLog(ctx, &domain.CrawlLogEntry{
		RunID:           runID,
		JobType:         domain.JobTypeCategoryCrawl,
		SourceKey:       profile.Key + ":rss",
		Status:          domain.StatusCompleted,
		ArticlesCount:   int(batch.saved.Load()),
		DuplicatesCount: int(batch.duplicates.Load()),
		ErrorsCount:     int(batch.errors.Load()),
		DurationSeconds: time.Since(started).Seconds(),
	})
	p.logger.Info("feed crawl finished",
		"source", profile.Key,
		"discovered", len(items),
		"saved", batch.saved.Load(),
		"duplicates", batch.duplicates.Load(),
		"errors", batch.errors.Load())
}

// processTasks runs the worker pool over one batch of article URLs.
func (p *Pipeline) processTasks(ctx context.Context, tasks []task) *counters {
	var (
		c   counters
		wg  sync.WaitGroup
		sem = make(chan struct{}, p.cfg.Workers)
	)

	for _, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(t task) {
			defer wg.Done()
			defer func() { <-sem }()
			p.processOne(ctx, t, &c)
			if p.cfg.Delay > 0 {
				select {
				case <-ctx.Done():
				case <-time.After(p.cfg.Delay):
				}
			}
		}(t)
	}

	wg.Wait()
	return &c
}

// processOne fetches, extracts, persists and emits a single article.
func (p *Pipeline) processOne(ctx context.Context, t task, c *counters) {
	page, err := p.client.Fetch(ctx, t.url)
	if err != nil {
		c.errors.Add(1)
		p.logger.Warn("skipping article, fetch failed", "url", t.url, "error", err)
		return
	}

	article, err := p.extractor.Extract(page.Document, page.URL)
	if err != nil {
		c.errors.Add(1)
		p.logger.Warn("skipping article, extraction failed", "url", t.url, "error", err)
		return
	}

	if t.category != "" {
		article.Categories = []string{t.category}
	}
	article.Metadata["channel"] = t.channel

	if p.stores.Articles != nil {
		inserted, err := p.stores.Articles.Save(ctx, article)
		if err != nil {
			c.errors.Add(1)
			p.logger.Error("failed to save article", "url", t.url, "error", err)
			return
		}
		if !inserted {
			c.duplicates.Add(1)
			p.logger.Debug("duplicate article", "url", t.url)
			return
		}
	}
	c.saved.Add(1)

	if p.emitter != nil {
		if err := p.emitter.Write(article); err != nil {
			p.logger.Warn("failed to emit article", "url", t.url, "error", err)
		}
	}

	if article.Author != "" && p.stores.Journalists != nil {
		if err := p.stores.Journalists.RecordArticle(ctx, article.Author, article.Source, article.Snapshot()); err != nil {
			p.logger.Warn("failed to record journalist stat",
				"journalist", article.Author,
				"url", t.url,
				"error", err)
		}
	}
}

// insertLog writes a crawl-log row, logging rather than failing when
// the audit store is unavailable.
func (p *Pipeline) insertLog(ctx context.Context, entry *domain.CrawlLogEntry) {
	if p.stores.CrawlLogs == nil {
		return
	}
	if err := p.stores.CrawlLogs.Insert(ctx, entry); err != nil {
		p.logger.Warn("failed to write crawl log", "job_type", entry.JobType, "error", err)
	}
}

func (p *Pipeline) sourceSelected(key string) bool {
	if len(p.cfg.SourceKeys) == 0 {
		return true
	}
	for _, k := range p.cfg.SourceKeys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func (p *Pipeline) categorySelected(url string) bool {
	if len(p.cfg.CategoryURLs) == 0 {
		return true
	}
	for _, u := range p.cfg.CategoryURLs {
		if u == url {
			return true
		}
	}
	return false
}

// feedsSelected reports whether the RSS channel runs: it is skipped when
// the run is narrowed to explicit category URLs.
func (p *Pipeline) feedsSelected() bool {
	return len(p.cfg.CategoryURLs) == 0
}
