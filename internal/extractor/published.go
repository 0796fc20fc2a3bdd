package extractor

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// publishedMetaSelectors are the publish-timestamp metas, most reliable
// first.
var publishedMetaSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="article:published_time"]`,
	`meta[property="og:article:published_time"]`,
	`meta[itemprop="datePublished"]`,
	`meta[name="date"]`,
	`meta[name="pubdate"]`,
}

// publishedLayouts are the timestamp formats publishers emit. RFC 3339
// covers the meta tags; the remainder show up in <time> elements.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02 15:04",
	"2006.01.02",
}

// extractPublishedDate runs the publish-date cascade: meta tags, then
// <time> elements. The field is optional; a page without a parseable
// timestamp yields nil.
func extractPublishedDate(doc *goquery.Document) *time.Time {
	for _, sel := range publishedMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if ts := parsePublished(content); ts != nil {
				return ts
			}
		}
	}

	var found *time.Time
	doc.Find("time").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"datetime", "content"} {
			if val, ok := s.Attr(attr); ok {
				if ts := parsePublished(val); ts != nil {
					found = ts
					return false
				}
			}
		}
		return true
	})
	return found
}

func parsePublished(raw string) *time.Time {
	raw = normalizeSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range publishedLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
