// Package fetcher issues HTTP GET requests with a shared client
// identity, retry with capped exponential backoff, and an encoding
// resolution cascade for pages advertising inconsistent or absent
// charset metadata.
package fetcher

import "errors"

// Errors returned by the fetcher.
var (
	// ErrFetchFailed is returned after all retries are exhausted. The
	// caller treats the URL as skipped, not fatal.
	ErrFetchFailed = errors.New("fetch failed after retries")
	// ErrEncodingUnresolved is recorded when no probed encoding decodes
	// the body cleanly and the UTF-8 fallback was used. Never fatal.
	ErrEncodingUnresolved = errors.New("could not resolve page encoding")
)
