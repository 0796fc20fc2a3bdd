// Package domain provides domain models used across the application.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Title and content bounds for a valid article record.
const (
	MinTitleLen   = 5
	MaxTitleLen   = 200
	MinContentLen = 100
)

// Discovery channels recorded in article metadata.
const (
	ChannelListing = "listing"
	ChannelRSS     = "rss"
)

// ArticleRecord represents one extracted news article. A record is
// constructed once per successful extraction and never mutated afterwards;
// the URL is its natural key.
type ArticleRecord struct {
	// Unique identifier assigned by the database
	ID int64 `db:"id" json:"-"`
	// Title of the article
	Title string `db:"title" json:"title"`
	// Main body text
	Content string `db:"content" json:"content"`
	// Article URL, globally unique
	URL string `db:"url" json:"url"`
	// Human-readable publisher name derived from the domain
	Source string `db:"source" json:"source"`
	// Reporter name, if one could be extracted
	Author string `db:"author" json:"author,omitempty"`
	// Publication timestamp, if present in the page
	PublishedDate *time.Time `db:"published_date" json:"published_date,omitempty"`
	// Category labels supplied by the frontier
	Categories []string `db:"categories" json:"categories"`
	// Reserved; currently always empty
	Tags []string `db:"tags" json:"tags"`
	// Crawl metadata: crawled_at, domain, discovery channel
	Metadata JSONBMap `db:"metadata" json:"metadata"`
	// Whitespace-separated token count of Content
	WordCount int `db:"word_count" json:"word_count"`
	// Record creation timestamp
	CreatedAt time.Time `db:"created_at" json:"created_at,omitzero"`
	// Record update timestamp
	UpdatedAt time.Time `db:"updated_at" json:"updated_at,omitzero"`
}

// Validate reports whether the record satisfies the mandatory-field
// invariant: 5..200 rune title and more than 100 runes of content.
func (a *ArticleRecord) Validate() error {
	titleLen := utf8.RuneCountInString(strings.TrimSpace(a.Title))
	if titleLen < MinTitleLen || titleLen > MaxTitleLen {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.Content)) <= MinContentLen {
		return ErrInvalidContent
	}
	if a.URL == "" {
		return ErrMissingURL
	}
	return nil
}

// ComputeWordCount counts whitespace-separated tokens in the content.
func (a *ArticleRecord) ComputeWordCount() int {
	return len(strings.Fields(a.Content))
}

// Snapshot returns the per-article fields appended to a journalist's
// history arrays.
func (a *ArticleRecord) Snapshot() ArticleSnapshot {
	category := ""
	if len(a.Categories) > 0 {
		category = a.Categories[0]
	}
	return ArticleSnapshot{
		Title:         a.Title,
		Content:       a.Content,
		URL:           a.URL,
		PublishedDate: a.PublishedDate,
		Category:      category,
	}
}
