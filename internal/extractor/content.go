package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// bylineSeparators mark an opening paragraph as a byline line rather
// than body text, e.g. "홍길동 기자 = ..." or "서울·연합뉴스 | ...".
var bylineSeparators = []string{"=", "·", "|"}

// extractContent runs the body cascade over the profile's container
// selectors. Excluded descendants (scripts, ads, social widgets) are
// removed before text extraction, and a leading byline paragraph is
// dropped.
func extractContent(doc *goquery.Document, profile *sources.Profile) string {
	selectors := sources.GenericContentSelectors()
	excludes := sources.GenericContentExcludes()
	if profile != nil && len(profile.Selectors.Content) > 0 {
		selectors = profile.Selectors.Content
	}
	if profile != nil && len(profile.Selectors.ContentExclude) > 0 {
		excludes = profile.Selectors.ContentExclude
	}

	for _, sel := range selectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		if content := containerText(container, excludes); validContent(content) {
			return content
		}
	}
	return ""
}

// containerText extracts the container's paragraph text with excluded
// nodes removed and a leading byline paragraph dropped.
func containerText(container *goquery.Selection, excludes []string) string {
	cleaned := container.Clone()
	for _, sel := range excludes {
		cleaned.Find(sel).Remove()
	}

	var paragraphs []string
	cleaned.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := normalizeSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	// Containers without <p> markup still carry their text directly.
	if len(paragraphs) == 0 {
		return normalizeSpace(cleaned.Text())
	}

	if isBylineParagraph(paragraphs[0]) {
		paragraphs = paragraphs[1:]
	}
	return strings.Join(paragraphs, "\n\n")
}

// isBylineParagraph reports whether a paragraph is a reporter byline
// line: it names a 기자 and carries one of the byline separators.
func isBylineParagraph(text string) bool {
	if !strings.Contains(text, "기자") {
		return false
	}
	for _, sep := range bylineSeparators {
		if strings.Contains(text, sep) {
			return true
		}
	}
	return false
}

func validContent(content string) bool {
	return utf8.RuneCountInString(normalizeSpace(content)) > domain.MinContentLen
}
