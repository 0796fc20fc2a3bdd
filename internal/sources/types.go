// Package sources defines per-publisher crawl profiles: URL shapes,
// category listings, field-selector cascades, and feed endpoints. A
// profile is pure configuration; the generic frontier/extractor machinery
// consumes it, so adding a publisher does not add code.
package sources

import (
	"fmt"
	"regexp"
)

// Category pairs a listing URL with its localized label.
type Category struct {
	// URL is the first listing page of the category.
	URL string `yaml:"url"`
	// Label is the Korean category name applied to extracted articles.
	Label string `yaml:"label"`
}

// FieldSelectors holds the ordered CSS selector cascades for article
// field extraction. Earlier entries are publisher-specific, later entries
// are generic fallbacks; the first selector producing a valid value wins.
type FieldSelectors struct {
	// Title selectors, tried after the social-preview meta tags.
	Title []string `yaml:"title"`
	// Author selectors for byline/reporter containers.
	Author []string `yaml:"author"`
	// Content selectors for the body container.
	Content []string `yaml:"content"`
	// ContentExclude are selectors removed from the body container
	// before text extraction.
	ContentExclude []string `yaml:"content_exclude"`
}

// Profile describes one publisher.
type Profile struct {
	// Key is the stable identifier used in logs and crawl-log rows.
	Key string `yaml:"key"`
	// Name is the human-readable publisher name stored on articles.
	Name string `yaml:"name"`
	// Hosts are the hostnames belonging to the publisher.
	Hosts []string `yaml:"hosts"`
	// ArticlePatterns are regular expressions an article URL's
	// path+query must match.
	ArticlePatterns []string `yaml:"article_patterns"`
	// RequireDatePath additionally demands a valid yyyy/mm/dd segment
	// run in the path (month 1..12, day 1..31).
	RequireDatePath bool `yaml:"require_date_path"`
	// MinPathSegments is the minimum number of path segments of an
	// article URL. Zero disables the check.
	MinPathSegments int `yaml:"min_path_segments"`
	// Categories are the listing pages crawled for this publisher.
	Categories []Category `yaml:"categories"`
	// Feeds are RSS endpoints used as an additional discovery channel.
	Feeds []string `yaml:"feeds"`
	// FeedCategoryLabels maps a feed URL path token to a category label.
	FeedCategoryLabels map[string]string `yaml:"feed_category_labels"`
	// Selectors are the extraction cascades.
	Selectors FieldSelectors `yaml:"selectors"`

	compiled []*regexp.Regexp
}

// Compile validates the profile and compiles its article patterns.
func (p *Profile) Compile() error {
	if p.Key == "" {
		return fmt.Errorf("profile missing key")
	}
	if p.Name == "" {
		return fmt.Errorf("profile %s: missing name", p.Key)
	}
	if len(p.Hosts) == 0 {
		return fmt.Errorf("profile %s: at least one host is required", p.Key)
	}

	p.compiled = make([]*regexp.Regexp, 0, len(p.ArticlePatterns))
	for _, pat := range p.ArticlePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("profile %s: invalid article pattern %q: %w", p.Key, pat, err)
		}
		p.compiled = append(p.compiled, re)
	}

	return nil
}

// Patterns returns the compiled article URL patterns.
func (p *Profile) Patterns() []*regexp.Regexp {
	return p.compiled
}
