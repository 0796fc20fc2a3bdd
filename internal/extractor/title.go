package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// titleMetaSelectors are the social-preview metas tried before any DOM
// selector. Publishers keep these accurate for link previews, so they
// outrank the markup.
var titleMetaSelectors = []string{
	`meta[property="og:title"]`,
	`meta[name="twitter:title"]`,
}

// adMarkerPattern matches bracketed promo markers that listing pages
// sometimes inject into headline slots.
var adMarkerPattern = regexp.MustCompile(`^\[(?:광고|AD|PR|협찬)\]`)

// extractTitle runs the title cascade: social-preview metas, the
// profile's selector list, then the document <title> with the trailing
// publisher suffix stripped.
func extractTitle(doc *goquery.Document, profile *sources.Profile) string {
	for _, sel := range titleMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if title := normalizeSpace(content); validTitle(title) {
				return title
			}
		}
	}

	var selectors []string
	if profile != nil {
		selectors = profile.Selectors.Title
	}
	for _, sel := range selectors {
		title := normalizeSpace(doc.Find(sel).First().Text())
		if validTitle(title) {
			return title
		}
	}

	if title := stripTitleSuffix(normalizeSpace(doc.Find("title").First().Text())); validTitle(title) {
		return title
	}

	return ""
}

// stripTitleSuffix removes a trailing " - publisher" or " | publisher"
// segment from a document title.
func stripTitleSuffix(title string) string {
	for _, sep := range []string{" - ", " | ", " :: "} {
		if idx := strings.LastIndex(title, sep); idx > 0 {
			title = title[:idx]
		}
	}
	return strings.TrimSpace(title)
}

// validTitle checks the length bounds and rejects ad markers, bare URLs
// and all-digit strings.
func validTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	if n < domain.MinTitleLen || n > domain.MaxTitleLen {
		return false
	}
	if adMarkerPattern.MatchString(title) {
		return false
	}
	if strings.HasPrefix(title, "http://") || strings.HasPrefix(title, "https://") {
		return false
	}
	return !allDigits(title)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
