package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

func rssBody(links ...string) string {
	items := ""
	for i, link := range links {
		items += fmt.Sprintf(`<item><title>기사 %d</title><link>%s</link></item>`, i+1, link)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>뉴스 피드</title>` + items + `</channel></rss>`
}

func TestDiscoverArticles(t *testing.T) {
	var host string
	mux := http.NewServeMux()
	mux.HandleFunc("/rss/politics/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssBody(
			"http://"+host+"/articles/100",
			"http://"+host+"/articles/200",
			"http://"+host+"/articles/100", // duplicate
			"http://"+host+"/list",         // not an article
			"https://elsewhere.example.org/articles/300",
		))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host = u.Host

	profile := &sources.Profile{
		Key:             "testpub",
		Name:            "테스트신문",
		Hosts:           []string{u.Hostname()},
		ArticlePatterns: []string{`/articles/\d+`},
		Feeds:           []string{srv.URL + "/rss/politics/"},
		FeedCategoryLabels: map[string]string{
			"politics": "정치",
		},
	}
	require.NoError(t, profile.Compile())

	items := NewReader(logger.NewNoOp()).DiscoverArticles(context.Background(), profile)

	require.Len(t, items, 2)
	assert.Equal(t, "http://"+host+"/articles/100", items[0].URL)
	assert.Equal(t, "정치", items[0].Category)
	assert.Equal(t, "http://"+host+"/articles/200", items[1].URL)
}

func TestDiscoverArticlesSkipsBrokenFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rss/bad/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not xml")
	})
	var host string
	mux.HandleFunc("/rss/good/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody("http://"+host+"/articles/100"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host = u.Host

	profile := &sources.Profile{
		Key:             "testpub",
		Name:            "테스트신문",
		Hosts:           []string{u.Hostname()},
		ArticlePatterns: []string{`/articles/\d+`},
		Feeds: []string{
			srv.URL + "/rss/bad/",
			srv.URL + "/rss/good/",
		},
	}
	require.NoError(t, profile.Compile())

	items := NewReader(logger.NewNoOp()).DiscoverArticles(context.Background(), profile)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Category)
}

func TestDiscoverArticlesNoFeeds(t *testing.T) {
	profile := &sources.Profile{
		Key:   "testpub",
		Name:  "테스트신문",
		Hosts: []string{"test.example"},
	}
	require.NoError(t, profile.Compile())

	items := NewReader(logger.NewNoOp()).DiscoverArticles(context.Background(), profile)
	assert.Empty(t, items)
}
