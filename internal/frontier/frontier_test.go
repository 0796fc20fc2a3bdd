package frontier

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysleecn1234/newspaper-project/internal/fetcher"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// newListingServer serves two listing pages: the first links two
// articles and the second page, the second links one more article and
// links back to the first.
func newListingServer(t *testing.T, pageTwoStatus int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Query().Get("page") == "2" {
			if pageTwoStatus != http.StatusOK {
				w.WriteHeader(pageTwoStatus)
				return
			}
			fmt.Fprint(w, `<html><body>
				<a href="/articles/300">기사 3</a>
				<a href="/list">이전</a>
				<a href="/list?page=1">1</a>
			</body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body>
			<a href="/articles/100">기사 1</a>
			<a href="/articles/200">기사 2</a>
			<a href="/articles/100">기사 1 중복</a>
			<a href="/list?page=2">다음</a>
		</body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newTestFrontier(t *testing.T, srvURL string, maxPages int) *Frontier {
	t.Helper()
	u, err := url.Parse(srvURL)
	require.NoError(t, err)

	registry, err := sources.NewRegistry([]*sources.Profile{{
		Key:             "testpub",
		Name:            "테스트신문",
		Hosts:           []string{u.Hostname()},
		ArticlePatterns: []string{`/articles/\d+`},
	}})
	require.NoError(t, err)

	client := fetcher.New(fetcher.Config{
		RequestTimeout: 5 * time.Second,
		UserAgent:      "test-agent",
	}, logger.NewNoOp())

	return New(client, registry, Config{MaxPages: maxPages}, logger.NewNoOp())
}

func TestCollectFollowsPagination(t *testing.T) {
	srv, requests := newListingServer(t, http.StatusOK)
	f := newTestFrontier(t, srv.URL, 5)

	links, err := f.Collect(context.Background(), srv.URL+"/list")
	require.NoError(t, err)

	assert.Equal(t, []string{
		srv.URL + "/articles/100",
		srv.URL + "/articles/200",
		srv.URL + "/articles/300",
	}, links)
	// /list, /list?page=2, /list?page=1: the bare /list revisit is
	// suppressed by the visited set.
	assert.Equal(t, int32(3), requests.Load())
}

func TestCollectRespectsPageBudget(t *testing.T) {
	srv, requests := newListingServer(t, http.StatusOK)
	f := newTestFrontier(t, srv.URL, 1)

	links, err := f.Collect(context.Background(), srv.URL+"/list")
	require.NoError(t, err)

	assert.Equal(t, []string{
		srv.URL + "/articles/100",
		srv.URL + "/articles/200",
	}, links)
	assert.Equal(t, int32(1), requests.Load())
}

func TestCollectSkipsFailedListingPage(t *testing.T) {
	srv, _ := newListingServer(t, http.StatusInternalServerError)
	f := newTestFrontier(t, srv.URL, 5)

	links, err := f.Collect(context.Background(), srv.URL+"/list")
	require.NoError(t, err)

	// Page two failed; its article never shows up, the walk continues.
	assert.Equal(t, []string{
		srv.URL + "/articles/100",
		srv.URL + "/articles/200",
	}, links)
}

func TestCollectFailedPageDoesNotConsumeBudget(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "2":
			w.WriteHeader(http.StatusInternalServerError)
		case "3":
			fmt.Fprint(w, `<html><body><a href="/articles/400">기사 4</a></body></html>`)
		default:
			fmt.Fprint(w, `<html><body>
				<a href="/articles/100">기사 1</a>
				<a href="/list?page=2">2</a>
				<a href="/list?page=3">3</a>
			</body></html>`)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	// Budget of two: the failing page sits between two good ones, and
	// only the good ones count against the budget.
	f := newTestFrontier(t, srv.URL, 2)

	links, err := f.Collect(context.Background(), srv.URL+"/list")
	require.NoError(t, err)

	assert.Equal(t, []string{
		srv.URL + "/articles/100",
		srv.URL + "/articles/400",
	}, links)
}

func TestCollectUnknownHost(t *testing.T) {
	srv, _ := newListingServer(t, http.StatusOK)
	f := newTestFrontier(t, srv.URL, 5)

	_, err := f.Collect(context.Background(), "https://unknown.example.org/list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source profile")
}

func TestCollectCancelledContext(t *testing.T) {
	srv, _ := newListingServer(t, http.StatusOK)
	f := newTestFrontier(t, srv.URL, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Collect(ctx, srv.URL+"/list")
	assert.ErrorIs(t, err, context.Canceled)
}
