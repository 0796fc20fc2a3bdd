package extractor

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Byline patterns for Korean reporter names. Both orders occur in the
// wild: "홍길동 기자" and "기자 홍길동".
var (
	reporterBeforePattern = regexp.MustCompile(`([가-힣]{2,4})\s*기자`)
	reporterAfterPattern  = regexp.MustCompile(`기자\s*([가-힣]{2,4})`)
)

// authorMetaSelectors are the byline meta tags tried after JSON-LD.
var authorMetaSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="byline"]`,
	`meta[name="dable:author"]`,
	`meta[name="twitter:creator"]`,
}

const (
	minAuthorRunes = 2
	maxAuthorRunes = 15

	bylineParagraphScan = 12
	bylineSpanScan      = 20
)

// extractAuthor runs the author cascade: JSON-LD author/creator fields,
// byline meta tags, the profile's byline selectors, then a bounded scan
// of early paragraphs and spans for the reporter byline pattern.
func extractAuthor(doc *goquery.Document, profile *sources.Profile) string {
	if author := authorFromJSONLD(doc); author != "" {
		return author
	}

	for _, sel := range authorMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if author := cleanAuthor(content); author != "" {
				return author
			}
		}
	}

	var selectors []string
	if profile != nil {
		selectors = profile.Selectors.Author
	}
	for _, sel := range selectors {
		var found string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found = cleanAuthor(s.Text())
			return found == ""
		})
		if found != "" {
			return found
		}
	}

	return authorFromBodyScan(doc)
}

// authorFromJSONLD pulls the author or creator from ld+json blocks.
// Values appear as a plain string, an object with a name key, or an
// array of either.
func authorFromJSONLD(doc *goquery.Document) string {
	var author string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		author = jsonLDAuthor(data)
		return author == ""
	})
	return author
}

func jsonLDAuthor(data any) string {
	switch v := data.(type) {
	case string:
		return cleanAuthor(v)
	case []any:
		for _, item := range v {
			if author := jsonLDAuthor(item); author != "" {
				return author
			}
		}
	case map[string]any:
		for _, key := range []string{"author", "creator"} {
			if val, ok := v[key]; ok {
				if author := jsonLDAuthor(val); author != "" {
					return author
				}
			}
		}
		if name, ok := v["name"].(string); ok {
			return cleanAuthor(name)
		}
		if graph, ok := v["@graph"]; ok {
			return jsonLDAuthor(graph)
		}
	}
	return ""
}

// authorFromBodyScan looks for a reporter byline in the first paragraphs
// and spans of the document. The scan is bounded so long articles stay
// cheap.
func authorFromBodyScan(doc *goquery.Document) string {
	var found string
	scan := func(_ int, s *goquery.Selection) bool {
		found = bylineName(s.Text())
		return found == ""
	}
	doc.Find("p").Slice(0, min(doc.Find("p").Length(), bylineParagraphScan)).EachWithBreak(scan)
	if found == "" {
		doc.Find("span").Slice(0, min(doc.Find("span").Length(), bylineSpanScan)).EachWithBreak(scan)
	}
	return found
}

// bylineName extracts a reporter name from free text via the byline
// patterns.
func bylineName(text string) string {
	if m := reporterBeforePattern.FindStringSubmatch(text); m != nil {
		return cleanAuthor(m[1])
	}
	if m := reporterAfterPattern.FindStringSubmatch(text); m != nil {
		return cleanAuthor(m[1])
	}
	return ""
}

// cleanAuthor normalizes a candidate author string: strips the 기자
// suffix and surrounding noise, then applies the validity gate. Returns
// empty when the candidate is rejected. Cleaning is idempotent.
func cleanAuthor(raw string) string {
	name := normalizeSpace(raw)
	name = strings.TrimSuffix(name, "기자")
	name = strings.Trim(name, " =·|,")
	if !validAuthor(name) {
		return ""
	}
	return name
}

func validAuthor(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < minAuthorRunes || n > maxAuthorRunes {
		return false
	}
	return containsHangul(name)
}

func containsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}
