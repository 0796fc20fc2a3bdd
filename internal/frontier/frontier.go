// Package frontier walks a publisher's paginated category listings
// breadth first and collects the article URLs they link to. The walk is
// bounded by a page budget and keeps visited and queued sets disjoint,
// so it terminates even on pagers that link in cycles.
package frontier

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/ysleecn1234/newspaper-project/internal/discover"
	"github.com/ysleecn1234/newspaper-project/internal/fetcher"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Fetcher is the page-retrieval dependency of the frontier.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetcher.Page, error)
}

// Config bounds a frontier walk.
type Config struct {
	// MaxPages is the listing-page budget per category, counting only
	// pages that fetched successfully. Values below 1 are treated as 1.
	MaxPages int
	// Delay is the politeness pause between listing-page fetches.
	Delay time.Duration
}

// Frontier collects article URLs from category listing pages.
type Frontier struct {
	client   Fetcher
	registry *sources.Registry
	cfg      Config
	logger   logger.Interface
}

// New creates a Frontier.
func New(client Fetcher, registry *sources.Registry, cfg Config, log logger.Interface) *Frontier {
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	return &Frontier{client: client, registry: registry, cfg: cfg, logger: log}
}

// Collect walks the category's listing pages starting at categoryURL and
// returns the discovered article URLs, sorted and deduplicated. Listing
// pages that fail to fetch are logged and skipped without consuming the
// page budget; only an unknown publisher host or context cancellation
// aborts the walk.
func (f *Frontier) Collect(ctx context.Context, categoryURL string) ([]string, error) {
	start, err := url.Parse(categoryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid category url %q: %w", categoryURL, err)
	}
	profile := f.registry.ByHost(start.Hostname())
	if profile == nil {
		return nil, fmt.Errorf("no source profile for host %q", start.Hostname())
	}

	queue := []string{categoryURL}
	queued := map[string]bool{categoryURL: true}
	visited := make(map[string]bool)
	articles := make(map[string]bool)
	fetched := 0

	for len(queue) > 0 && fetched < f.cfg.MaxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageURL := queue[0]
		queue = queue[1:]
		delete(queued, pageURL)
		if visited[pageURL] {
			continue
		}

		if fetched > 0 && f.cfg.Delay > 0 {
			if err := sleepCtx(ctx, f.cfg.Delay); err != nil {
				return nil, err
			}
		}

		page, err := f.client.Fetch(ctx, pageURL)
		visited[pageURL] = true
		if err != nil {
			f.logger.Warn("listing page fetch failed, skipping", "url", pageURL, "error", err)
			continue
		}
		fetched++

		base, err := url.Parse(page.URL)
		if err != nil {
			base = start
		}

		found := discover.ArticleLinks(page.Document, base, profile)
		for _, link := range found {
			articles[link] = true
		}
		f.logger.Debug("listing page processed",
			"url", pageURL,
			"articles", len(found),
			"fetched", fetched)

		for _, next := range discover.PaginationLinks(page.Document, base) {
			if visited[next] || queued[next] {
				continue
			}
			if !sameHost(next, start) {
				continue
			}
			queued[next] = true
			queue = append(queue, next)
		}
	}

	result := make([]string, 0, len(articles))
	for link := range articles {
		result = append(result, link)
	}
	sort.Strings(result)
	return result, nil
}

func sameHost(rawURL string, base *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Hostname() == base.Hostname()
}

// sleepCtx pauses for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
