package discover

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func dongaProfile(t *testing.T) *sources.Profile {
	t.Helper()
	reg, err := sources.NewDefaultRegistry()
	require.NoError(t, err)
	p := reg.ByKey("donga")
	require.NotNil(t, p)
	return p
}

func TestArticleLinks(t *testing.T) {
	base := mustParseURL(t, "https://www.donga.com/news/Politics")
	html := `<html><body>
		<a href="/news/Politics/2024/05/13/100001/1">기사 1</a>
		<a href="https://www.donga.com/news/Politics/2024/05/13/100002/1">기사 2</a>
		<a href="/news/Politics/2024/05/13/100001/1">기사 1 중복</a>
		<a href="/news/Politics/2024/05/99/100003/1">잘못된 날짜</a>
		<a href="javascript:void(0)">스크립트</a>
		<a href="#comments">댓글</a>
		<a href="mailto:desk@donga.com">제보</a>
		<a href="https://other.example.com/news/Politics/2024/05/13/100004/1">외부</a>
	</body></html>`

	links := ArticleLinks(parseHTML(t, html), base, dongaProfile(t))

	assert.Equal(t, []string{
		"https://www.donga.com/news/Politics/2024/05/13/100001/1",
		"https://www.donga.com/news/Politics/2024/05/13/100002/1",
	}, links)
}

func TestPaginationLinks(t *testing.T) {
	base := mustParseURL(t, "https://www.donga.com/news/Politics")
	html := `<html><body>
		<a href="/news/Politics?p=11&page=2">2</a>
		<a href="/news/Politics?p=11&page=2">2 중복</a>
		<a href="/news/Politics/More">다음</a>
		<a href="/news/Politics/Last">마지막</a>
		<a href="/news/Politics/Other">그냥 링크</a>
	</body></html>`

	links := PaginationLinks(parseHTML(t, html), base)

	assert.Equal(t, []string{
		"https://www.donga.com/news/Politics?p=11&page=2",
		"https://www.donga.com/news/Politics/More",
		"https://www.donga.com/news/Politics/Last",
	}, links)
}

func TestPaginationLinksNextSymbols(t *testing.T) {
	base := mustParseURL(t, "https://www.sisaon.co.kr/news/articleList.html")
	html := `<html><body>
		<a href="/news/articleList.html?sc_sub_section_code=S2N29&amp;page=3">&gt;</a>
		<a href="/news/articleList.html?sc_sub_section_code=S2N29&amp;page=10">&gt;&gt;</a>
	</body></html>`

	links := PaginationLinks(parseHTML(t, html), base)
	require.Len(t, links, 2)
	assert.Contains(t, links[0], "page=3")
	assert.Contains(t, links[1], "page=10")
}

func TestResolveHref(t *testing.T) {
	base := mustParseURL(t, "https://www.donga.com/news/Politics")

	resolved, ok := resolveHref(base, "/news/Economy")
	require.True(t, ok)
	assert.Equal(t, "https://www.donga.com/news/Economy", resolved)

	resolved, ok = resolveHref(base, "More")
	require.True(t, ok)
	assert.Equal(t, "https://www.donga.com/news/More", resolved)

	_, ok = resolveHref(base, "tel:021234567")
	assert.False(t, ok)
	_, ok = resolveHref(base, "#top")
	assert.False(t, ok)
	_, ok = resolveHref(base, "")
	assert.False(t, ok)
}
