// Package feed discovers article URLs through a publisher's RSS
// endpoints. It is a supplemental channel next to listing-page
// discovery; profiles without feeds skip it entirely.
package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// ErrParseMalformed means a feed endpoint returned something the parser
// could not read. The feed is skipped, never fatal.
var ErrParseMalformed = errors.New("feed parse failed")

// Item is one article discovered through a feed.
type Item struct {
	// URL is the article URL, already accepted by the publisher's
	// URL predicate.
	URL string
	// Category is the label derived from the feed endpoint, empty when
	// the profile has no mapping for it.
	Category string
}

// Reader reads a publisher's RSS feeds.
type Reader struct {
	parser *gofeed.Parser
	logger logger.Interface
}

// NewReader creates a feed Reader.
func NewReader(log logger.Interface) *Reader {
	return &Reader{parser: gofeed.NewParser(), logger: log}
}

// DiscoverArticles reads every feed the profile declares and returns
// the linked articles that pass the publisher's URL predicate,
// first-seen order, deduplicated. A feed that fails to fetch or parse
// is logged and skipped.
func (r *Reader) DiscoverArticles(ctx context.Context, profile *sources.Profile) []Item {
	var items []Item
	seen := make(map[string]bool)

	for _, feedURL := range profile.Feeds {
		if ctx.Err() != nil {
			return items
		}

		parsed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			r.logger.Warn("skipping feed",
				"source", profile.Key,
				"feed", feedURL,
				"error", fmt.Errorf("%w: %v", ErrParseMalformed, err))
			continue
		}

		category := categoryForFeed(profile, feedURL)
		accepted := 0
		for _, entry := range parsed.Items {
			link := strings.TrimSpace(entry.Link)
			if link == "" || seen[link] || !profile.IsArticleURL(link) {
				continue
			}
			seen[link] = true
			items = append(items, Item{URL: link, Category: category})
			accepted++
		}
		r.logger.Debug("feed processed",
			"source", profile.Key,
			"feed", feedURL,
			"items", len(parsed.Items),
			"accepted", accepted)
	}

	return items
}

// categoryForFeed maps a feed endpoint to its category label via the
// profile's token table.
func categoryForFeed(profile *sources.Profile, feedURL string) string {
	for token, label := range profile.FeedCategoryLabels {
		if strings.Contains(feedURL, "/"+token+"/") || strings.Contains(feedURL, "/"+token+"?") {
			return label
		}
	}
	return ""
}
