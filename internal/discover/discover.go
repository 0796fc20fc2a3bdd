// Package discover finds article and pagination links on listing pages.
// Discovery is purely structural: anchors are resolved against the page
// URL and filtered through the publisher's URL predicate, so the same
// code serves every publisher.
package discover

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// skippedSchemes are href prefixes that never lead to a page.
var skippedSchemes = []string{"javascript:", "mailto:", "tel:"}

// paginationTokens are href substrings identifying pager links.
var paginationTokens = []string{"page", "pageno", "pageindex", "pagenum"}

// paginationLabels are anchor texts identifying pager links, covering
// the Korean next/last conventions.
var paginationLabels = map[string]bool{
	"다음":   true,
	"다음>":  true,
	">":    true,
	">>":   true,
	"끝":    true,
	"마지막":  true,
	"next": true,
}

// ArticleLinks returns the article URLs linked from doc, resolved
// against base. A link qualifies when the publisher's URL predicate
// accepts it. Order is first-seen, duplicates removed.
func ArticleLinks(doc *goquery.Document, base *url.URL, profile *sources.Profile) []string {
	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		resolved, ok := resolveHref(base, href)
		if !ok {
			return
		}
		if seen[resolved] || !profile.IsArticleURL(resolved) {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

// PaginationLinks returns listing pager URLs linked from doc: anchors
// whose href carries a pagination token or whose text is a known pager
// label. Order is first-seen, duplicates removed.
func PaginationLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !isPaginationHref(href) && !paginationLabels[strings.ToLower(strings.TrimSpace(a.Text()))] {
			return
		}
		resolved, ok := resolveHref(base, href)
		if !ok || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

// resolveHref resolves an anchor href against the page URL. Fragment
// anchors, non-navigational schemes and malformed values are rejected.
func resolveHref(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	lower := strings.ToLower(href)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	resolved.Fragment = ""
	return resolved.String(), true
}

func isPaginationHref(href string) bool {
	lower := strings.ToLower(href)
	for _, token := range paginationTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
