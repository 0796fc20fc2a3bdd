package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

// maxResponseBodyBytes limits the size of fetched page responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// maxBackoffInterval caps the delay between retry attempts.
const maxBackoffInterval = 4 * time.Second

// Config holds fetcher settings.
type Config struct {
	RequestTimeout time.Duration
	MaxRetries     int
	UserAgent      string
	AcceptLanguage string
}

// Page is a fetched and decoded document.
type Page struct {
	// URL the page was fetched from.
	URL string
	// Body is the UTF-8 decoded page text.
	Body string
	// Document is the parsed body.
	Document *goquery.Document
	// Encoding is the resolved source encoding name.
	Encoding string
}

// Client fetches pages with a shared identity and retry policy.
type Client struct {
	httpClient     *http.Client
	userAgent      string
	acceptLanguage string
	maxRetries     int
	log            logger.Interface
}

// New creates a fetch client.
func New(cfg Config, log logger.Interface) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		maxRetries:     cfg.MaxRetries,
		log:            log,
	}
}

// Fetch retrieves and decodes the page at rawURL. Transport failures and
// non-2xx statuses are retried with exponential backoff; exhausted
// retries return ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	var body []byte
	var contentType string

	operation := func() error {
		var opErr error
		body, contentType, opErr = c.doRequest(ctx, rawURL)
		return opErr
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = maxBackoffInterval

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, rawURL, err)
	}

	text, encodingName, decodeErr := decodeBody(body, contentType)
	if decodeErr != nil {
		// Decoding falls back to UTF-8; record the failure and continue.
		c.log.Warn("page encoding unresolved, using utf-8",
			"url", rawURL,
			"content_type", contentType,
		)
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader([]byte(text)))
	if parseErr != nil {
		return nil, fmt.Errorf("parse document %s: %w", rawURL, parseErr)
	}

	return &Page{
		URL:      rawURL,
		Body:     text,
		Document: doc,
		Encoding: encodingName,
	}, nil
}

// doRequest performs one HTTP GET attempt.
func (c *Client) doRequest(ctx context.Context, rawURL string) (body []byte, contentType string, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if reqErr != nil {
		// A malformed URL never becomes valid; don't retry it.
		return nil, "", backoff.Permanent(fmt.Errorf("create request: %w", reqErr))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, "", fmt.Errorf("http fetch: %w", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", fmt.Errorf("http status %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxResponseBodyBytes)
	body, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, "", fmt.Errorf("read response body: %w", readErr)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
