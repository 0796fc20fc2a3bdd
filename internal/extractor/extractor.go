// Package extractor turns fetched article pages into structured
// records. Every field runs its own ordered cascade of strategies with
// a validation gate; extraction is pure and touches neither the network
// nor the database.
package extractor

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Extractor extracts article fields from parsed documents using the
// publisher profiles in the registry.
type Extractor struct {
	registry *sources.Registry
	logger   logger.Interface
}

// New creates an Extractor backed by the given profile registry.
func New(registry *sources.Registry, log logger.Interface) *Extractor {
	return &Extractor{registry: registry, logger: log}
}

// Extract builds an article record from the document at pageURL. Title
// and content are mandatory; a page missing either yields
// ErrExtractionIncomplete and no record. Author and publish date are
// best effort.
func (e *Extractor) Extract(doc *goquery.Document, pageURL string) (*domain.ArticleRecord, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid article url %q: %w", pageURL, err)
	}
	host := parsed.Hostname()
	profile := e.registry.ByHost(host)

	title := extractTitle(doc, profile)
	content := extractContent(doc, profile)
	if title == "" || content == "" {
		e.logger.Debug("extraction incomplete",
			"url", pageURL,
			"has_title", title != "",
			"has_content", content != "")
		return nil, fmt.Errorf("%s: %w", pageURL, ErrExtractionIncomplete)
	}

	record := &domain.ArticleRecord{
		Title:         title,
		Content:       content,
		URL:           pageURL,
		Source:        e.registry.SourceName(host),
		Author:        extractAuthor(doc, profile),
		PublishedDate: extractPublishedDate(doc),
		Categories:    []string{},
		Tags:          []string{},
		Metadata: domain.JSONBMap{
			"crawled_at": time.Now().UTC().Format(time.RFC3339),
			"domain":     host,
			"channel":    domain.ChannelListing,
		},
	}
	record.WordCount = record.ComputeWordCount()
	return record, nil
}
